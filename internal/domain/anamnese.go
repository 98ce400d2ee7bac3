package domain

import (
	"time"

	"github.com/google/uuid"
)

// Anamnese is the intake questionnaire filled in before a lash procedure.
// Every answer is optional free text.
type Anamnese struct {
	ID                uuid.UUID `db:"id" json:"id"`
	ClientID          uuid.UUID `db:"client_id" json:"clientId"`
	Datetime          time.Time `db:"datetime" json:"datetime"`
	Mascara           *string   `db:"mascara" json:"rimel"`
	Pregnant          *string   `db:"pregnant" json:"gestante"`
	EyeProcedure      *string   `db:"eye_procedure" json:"procedimento_olhos"`
	Allergy           *string   `db:"allergy" json:"alergia"`
	AllergyDetails    *string   `db:"allergy_details" json:"especificar_alergia"`
	Thyroid           *string   `db:"thyroid" json:"tireoide"`
	EyeProblem        *string   `db:"eye_problem" json:"problema_ocular"`
	EyeProblemDetails *string   `db:"eye_problem_details" json:"especificar_ocular"`
	Oncological       *string   `db:"oncological" json:"oncologico"`
	SleepsOnSide      *string   `db:"sleeps_on_side" json:"dorme_lado"`
	SleepSidePosition *string   `db:"sleep_side_position" json:"dorme_lado_posicao"`
	ProblemToReport   *string   `db:"problem_to_report" json:"problema_informar"`
	Procedure         *string   `db:"preferred_procedure" json:"procedimento"`
	Mapping           *string   `db:"mapping" json:"mapping"`
	Style             *string   `db:"style" json:"estilo"`
	LashModel         *string   `db:"lash_model" json:"modelo_fios"`
	Thickness         *string   `db:"thickness" json:"espessura"`
	Curl              *string   `db:"curl" json:"curvatura"`
	Adhesive          *string   `db:"adhesive" json:"adesivo"`
	Notes             *string   `db:"notes" json:"observacao"`
}
