package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lash-app/backend/internal/domain"

	"github.com/signintech/gopdf"
)

const (
	fontName     = "dejavu"
	marginX      = 50.0
	pageBottom   = 750.0
	notAnswered  = "Não informado"
	dateLayout   = "02/01/2006"
	headerHeight = 70.0
)

var ErrFontNotFound = errors.New("pdf font not found")

// Generator renders documents with a single TTF font. The font must cover
// Portuguese accents, the built-in PDF fonts do not.
type Generator struct {
	fontPath string
}

func NewGenerator(fontPath string) *Generator {
	return &Generator{fontPath: fontPath}
}

type question struct {
	title  string
	answer *string
}

// GenerateAnamnesePDF renders the questionnaire of clientName as an A4 document.
func (g *Generator) GenerateAnamnesePDF(anamnese *domain.Anamnese, clientName string) ([]byte, error) {
	if _, err := os.Stat(g.fontPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFontNotFound, g.fontPath)
	}

	doc := &gopdf.GoPdf{}
	doc.Start(gopdf.Config{
		PageSize: *gopdf.PageSizeA4,
		Unit:     gopdf.Unit_PT,
	})

	if err := doc.AddTTFFont(fontName, g.fontPath); err != nil {
		return nil, fmt.Errorf("add ttf font failed: %w", err)
	}

	doc.AddPage()
	if err := doc.SetFont(fontName, "", 14); err != nil {
		return nil, fmt.Errorf("set font failed: %w", err)
	}

	addHeader(doc)

	doc.SetFont(fontName, "", 16)
	doc.SetX(marginX)
	doc.SetY(headerHeight + 30)
	doc.Cell(nil, "Cliente: "+clientName)

	doc.SetY(doc.GetY() + 24)
	doc.SetX(marginX)
	doc.SetFont(fontName, "", 12)
	doc.Cell(nil, "Data: "+anamnese.Datetime.Format(dateLayout+" 15:04"))

	for _, q := range questions(anamnese) {
		addSection(doc, q.title, answerText(q.answer))
	}

	addFooter(doc)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to output PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func questions(a *domain.Anamnese) []question {
	return []question{
		{"Usa rímel?", a.Mascara},
		{"Gestante?", a.Pregnant},
		{"Procedimento recente nos olhos?", a.EyeProcedure},
		{"Alergia?", a.Allergy},
		{"Especificar alergia", a.AllergyDetails},
		{"Tireoide?", a.Thyroid},
		{"Problema ocular?", a.EyeProblem},
		{"Especificar problema ocular", a.EyeProblemDetails},
		{"Tratamento oncológico?", a.Oncological},
		{"Dorme de lado?", a.SleepsOnSide},
		{"Posição ao dormir", a.SleepSidePosition},
		{"Algum problema a informar?", a.ProblemToReport},
		{"Procedimento", a.Procedure},
		{"Mapping", a.Mapping},
		{"Estilo", a.Style},
		{"Modelo dos fios", a.LashModel},
		{"Espessura", a.Thickness},
		{"Curvatura", a.Curl},
		{"Adesivo", a.Adhesive},
		{"Observação", a.Notes},
	}
}

func answerText(answer *string) string {
	if answer == nil || *answer == "" {
		return notAnswered
	}
	return *answer
}

func addHeader(doc *gopdf.GoPdf) {
	doc.SetFillColor(214, 51, 132)
	doc.RectFromUpperLeftWithStyle(0, 0, 595, headerHeight, "F")

	doc.SetTextColor(255, 255, 255)
	doc.SetFont(fontName, "", 22)
	doc.SetX(marginX)
	doc.SetY(28)
	doc.Cell(nil, "FICHA DE ANAMNESE")
	doc.SetTextColor(0, 0, 0)
}

func addSection(doc *gopdf.GoPdf, title, content string) {
	currentY := doc.GetY() + 18

	if currentY > pageBottom {
		doc.AddPage()
		currentY = 50
	}

	doc.SetY(currentY)
	doc.SetX(marginX)
	doc.SetFont(fontName, "", 12)
	doc.SetTextColor(0, 0, 0)
	doc.Cell(nil, title)

	doc.SetY(doc.GetY() + 15)
	doc.SetX(marginX)
	doc.SetFont(fontName, "", 10)
	doc.SetTextColor(60, 60, 60)
	doc.MultiCell(&gopdf.Rect{W: 495, H: 13}, content)
}

func addFooter(doc *gopdf.GoPdf) {
	doc.SetY(780)
	doc.SetX(marginX)
	doc.SetFont(fontName, "", 9)
	doc.SetTextColor(150, 150, 150)
	doc.Cell(nil, "Documento gerado em "+time.Now().Format(dateLayout))
}
