package wizard

import "strconv"

// Blood-pressure acceptance windows (mmHg), bounds inclusive.
const (
	systolicMin  = 70
	systolicMax  = 250
	diastolicMin = 40
	diastolicMax = 150
)

// ValidateStep gates a Next transition out of stepIndex. Only one
// rejection reason is surfaced per call: basic-info completeness first,
// then blood-pressure presence, then blood-pressure range. Schema-driven
// steps carry no rules and accept any combination of values.
func ValidateStep(stepIndex int, st *State) error {
	if stepIndex != 0 {
		return nil
	}

	if !st.BasicInfoComplete() {
		return &ValidationError{Reason: "Preencha residente, data e horário para continuar"}
	}
	if st.BasicInfo.Systolic == "" || st.BasicInfo.Diastolic == "" {
		return &ValidationError{Reason: "Informe a pressão arterial (sistólica e diastólica)"}
	}
	sys, err := strconv.Atoi(st.BasicInfo.Systolic)
	if err != nil {
		return &ValidationError{Reason: "Pressão arterial deve conter apenas números inteiros"}
	}
	dia, err := strconv.Atoi(st.BasicInfo.Diastolic)
	if err != nil {
		return &ValidationError{Reason: "Pressão arterial deve conter apenas números inteiros"}
	}
	if sys < systolicMin || sys > systolicMax {
		return &ValidationError{Reason: "Pressão sistólica fora do intervalo aceito (70 a 250 mmHg)"}
	}
	if dia < diastolicMin || dia > diastolicMax {
		return &ValidationError{Reason: "Pressão diastólica fora do intervalo aceito (40 a 150 mmHg)"}
	}
	return nil
}
