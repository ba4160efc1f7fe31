package schema

// CategoryBloodPressure derived field written by the wizard from the
// systolic/diastolic basic-info inputs; never edited directly.
const CategoryBloodPressure = "bloodPressure"

// BaseCategories the fixed care-log catalog. Declaration order is the
// display order within a step.
var BaseCategories = []Category{
	{
		ID:          CategoryBloodPressure,
		Title:       "Pressão arterial",
		FieldType:   FieldText,
		Placeholder: "120/80 mmHg",
	},
	{
		ID:        "feeding",
		Title:     "Alimentação",
		FieldType: FieldOption,
		Options: []Option{
			{ID: "feeding-1", Value: "Comeu bem", Label: "Comeu bem", Color: "#4caf50"},
			{ID: "feeding-2", Value: "Comeu pouco", Label: "Comeu pouco", Color: "#ff9800"},
			{ID: "feeding-3", Value: "Recusou alimentação", Label: "Recusou alimentação", Color: "#f44336"},
			{ID: "feeding-4", Value: "Alimentação assistida", Label: "Alimentação assistida", Color: "#2196f3"},
		},
	},
	{
		ID:        "hydration",
		Title:     "Hidratação",
		FieldType: FieldOption,
		Options: []Option{
			{ID: "hydration-1", Value: "Bem hidratado", Label: "Bem hidratado", Color: "#4caf50"},
			{ID: "hydration-2", Value: "Hidratação moderada", Label: "Hidratação moderada", Color: "#ff9800"},
			{ID: "hydration-3", Value: "Pouca ingestão de líquidos", Label: "Pouca ingestão de líquidos", Color: "#f44336"},
		},
	},
	{
		ID:        "appetite",
		Title:     "Apetite",
		FieldType: FieldRating,
	},
	{
		ID:          "foodNotes",
		Title:       "Observações sobre alimentação",
		FieldType:   FieldText,
		Placeholder: "Ex: preferiu sopa, recusou sobremesa...",
	},
	{
		ID:        "mobility",
		Title:     "Mobilidade",
		FieldType: FieldOption,
		Options: []Option{
			{ID: "mobility-1", Value: "Caminhou sozinho", Label: "Caminhou sozinho", Icon: "walk"},
			{ID: "mobility-2", Value: "Caminhou com auxílio", Label: "Caminhou com auxílio", Icon: "assist"},
			{ID: "mobility-3", Value: "Cadeira de rodas", Label: "Cadeira de rodas", Icon: "wheelchair"},
			{ID: "mobility-4", Value: "Acamado", Label: "Acamado", Icon: "bed"},
		},
	},
	{
		ID:        "physicalActivity",
		Title:     "Realizou atividade física",
		FieldType: FieldBoolean,
	},
	{
		ID:        "painLevel",
		Title:     "Nível de dor",
		FieldType: FieldRating,
	},
	{
		ID:        "sleepQuality",
		Title:     "Qualidade do sono",
		FieldType: FieldOption,
		Options: []Option{
			{ID: "sleep-1", Value: "Dormiu bem", Label: "Dormiu bem", Color: "#4caf50"},
			{ID: "sleep-2", Value: "Sono agitado", Label: "Sono agitado", Color: "#ff9800"},
			{ID: "sleep-3", Value: "Insônia", Label: "Insônia", Color: "#f44336"},
		},
	},
	{
		ID:        "medicationTaken",
		Title:     "Tomou medicação",
		FieldType: FieldBoolean,
	},
	{
		ID:          "medicationNotes",
		Title:       "Observações sobre medicação",
		FieldType:   FieldText,
		Placeholder: "Ex: recusou medicação da tarde...",
	},
	{
		ID:          "temperature",
		Title:       "Temperatura (°C)",
		FieldType:   FieldNumber,
		Placeholder: "36.5",
	},
	{
		ID:          "glycemia",
		Title:       "Glicemia (mg/dL)",
		FieldType:   FieldNumber,
		Placeholder: "99",
	},
	{
		ID:            "symptoms",
		Title:         "Sintomas apresentados",
		FieldType:     FieldOption,
		AllowMultiple: true,
		Options: []Option{
			{ID: "symptoms-1", Value: "Febre", Label: "Febre"},
			{ID: "symptoms-2", Value: "Tosse", Label: "Tosse"},
			{ID: "symptoms-3", Value: "Tontura", Label: "Tontura"},
			{ID: "symptoms-4", Value: "Náusea", Label: "Náusea"},
			{ID: "symptoms-5", Value: "Falta de ar", Label: "Falta de ar"},
			{ID: "symptoms-6", Value: "Dor de cabeça", Label: "Dor de cabeça"},
		},
	},
	{
		ID:        "mood",
		Title:     "Humor",
		FieldType: FieldOption,
		Options: []Option{
			{ID: "mood-1", Value: "Alegre", Label: "Alegre", Icon: "smile", Color: "#4caf50"},
			{ID: "mood-2", Value: "Tranquilo", Label: "Tranquilo", Icon: "calm", Color: "#2196f3"},
			{ID: "mood-3", Value: "Ansioso", Label: "Ansioso", Icon: "anxious", Color: "#ff9800"},
			{ID: "mood-4", Value: "Triste", Label: "Triste", Icon: "sad", Color: "#9e9e9e"},
			{ID: "mood-5", Value: "Irritado", Label: "Irritado", Icon: "angry", Color: "#f44336"},
		},
	},
	{
		ID:        "orientation",
		Title:     "Orientação",
		FieldType: FieldOption,
		Options: []Option{
			{ID: "orientation-1", Value: "Orientado", Label: "Orientado"},
			{ID: "orientation-2", Value: "Parcialmente orientado", Label: "Parcialmente orientado"},
			{ID: "orientation-3", Value: "Desorientado", Label: "Desorientado"},
		},
	},
	{
		ID:        "memory",
		Title:     "Memória",
		FieldType: FieldRating,
	},
	{
		ID:          "behaviorNotes",
		Title:       "Observações de comportamento",
		FieldType:   FieldText,
		Placeholder: "Ex: mais comunicativo hoje...",
	},
	{
		ID:            "socialInteraction",
		Title:         "Convívio social",
		FieldType:     FieldOption,
		AllowMultiple: true,
		Options: []Option{
			{ID: "social-1", Value: "Participou de atividades", Label: "Participou de atividades"},
			{ID: "social-2", Value: "Recebeu visitas", Label: "Recebeu visitas"},
			{ID: "social-3", Value: "Interagiu com outros residentes", Label: "Interagiu com outros residentes"},
			{ID: "social-4", Value: "Preferiu ficar sozinho", Label: "Preferiu ficar sozinho"},
		},
	},
	{
		ID:        "familyContact",
		Title:     "Contato com a família",
		FieldType: FieldBoolean,
	},
	{
		ID:          "generalNotes",
		Title:       "Observações gerais",
		FieldType:   FieldText,
		Placeholder: "Outras observações do dia...",
	},
}

// AdditionalCategories deployment-specific extensions, appended after the
// base set.
var AdditionalCategories = []Category{
	{
		ID:        "physiotherapy",
		Title:     "Sessão de fisioterapia",
		FieldType: FieldBoolean,
	},
	{
		ID:        "skinCondition",
		Title:     "Condição da pele",
		FieldType: FieldOption,
		Options: []Option{
			{ID: "skin-1", Value: "Íntegra", Label: "Íntegra", Color: "#4caf50"},
			{ID: "skin-2", Value: "Ressecada", Label: "Ressecada", Color: "#ff9800"},
			{ID: "skin-3", Value: "Lesão em acompanhamento", Label: "Lesão em acompanhamento", Color: "#f44336"},
		},
	},
}

// DefaultCatalog builds the catalog served by the wizard: base set first,
// deployment extensions after.
func DefaultCatalog() *Catalog {
	return NewCatalog(BaseCategories, AdditionalCategories)
}
