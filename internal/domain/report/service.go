package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/signintech/gopdf"

	"github.com/triage/triage/internal/domain/triage"
)

// defaultFontDirs are the usual DejaVuSans locations; the first readable
// hit wins. Extra directories can be supplied via configuration.
var defaultFontDirs = []string{
	"/usr/share/fonts/ttf-dejavu",
	"/usr/share/fonts/dejavu",
	"/usr/share/fonts/truetype/dejavu",
}

const fontFile = "DejaVuSans.ttf"

// Service renders analysis results as plaintext and PDF reports.
type Service struct {
	fontDirs []string
}

func NewService(extraFontDirs []string) *Service {
	return &Service{fontDirs: append(append([]string(nil), extraFontDirs...), defaultFontDirs...)}
}

// RenderText produces the plaintext summary report for an analysis.
func (s *Service) RenderText(res *triage.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("SYMPTOM ANALYSIS REPORT\n")
	fmt.Fprintf(&b, "Date: %s\n\n", res.GeneratedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("Patient Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", res.PatientName)
	fmt.Fprintf(&b, "- Age: %d years (%s)\n", res.Age, res.AgeCategory)
	allergies := "None reported"
	if len(res.Allergies) > 0 {
		allergies = strings.Join(res.Allergies, ", ")
	}
	fmt.Fprintf(&b, "- Known Allergies: %s\n\n", allergies)

	b.WriteString("Symptoms Reported:\n")
	for _, sym := range res.Symptoms {
		fmt.Fprintf(&b, "- %s\n", sym)
	}
	b.WriteString("\n")

	b.WriteString("Analysis:\n")
	fmt.Fprintf(&b, "- Predicted Condition: %s\n", res.Condition)
	fmt.Fprintf(&b, "- Confidence Level: %d%%\n", res.Confidence)
	fmt.Fprintf(&b, "- Severity: %s\n\n", res.Info.Severity)

	b.WriteString("Recommendations:\n")
	switch {
	case res.Emergency:
		b.WriteString("IMMEDIATE MEDICAL ATTENTION REQUIRED - NO SELF-MEDICATION\n")
		for _, p := range res.Info.Precautions {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	case len(res.Recommendations) > 0:
		for _, r := range res.Recommendations {
			fmt.Fprintf(&b, "- %s (%s)\n", r.Name, r.Category)
		}
		b.WriteString("\nConsult doctor before taking any medication\n")
	default:
		b.WriteString("No safe medication recommendations available. Please consult a doctor.\n")
	}

	b.WriteString("\nDisclaimer:\n")
	b.WriteString("This report is generated by an automated system for decision support purposes only.\n")
	b.WriteString("It does NOT constitute medical advice, diagnosis, or treatment.\n")
	b.WriteString("Always consult a qualified healthcare professional before taking any action.\n")

	return b.String()
}

// RenderPDF produces a PDF version of the report. It requires a DejaVuSans
// font on the host; the error names the searched directories when none is
// found.
func (s *Service) RenderPDF(res *triage.AnalysisResult) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	fontPath, err := s.findFont()
	if err != nil {
		return nil, err
	}
	if err := pdf.AddTTFFont("DejaVu", fontPath); err != nil {
		return nil, fmt.Errorf("load font %s: %w", fontPath, err)
	}

	if err := pdf.SetFont("DejaVu", "", 18); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Symptom Analysis Report")
	pdf.Br(28)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	for _, line := range strings.Split(s.RenderText(res), "\n") {
		if line == "" {
			pdf.Br(8)
			continue
		}
		wrapped, err := pdf.SplitText(line, 500)
		if err != nil {
			wrapped = []string{line}
		}
		for _, w := range wrapped {
			pdf.Cell(nil, w)
			pdf.Br(14)
		}
	}

	return pdf.GetBytesPdf(), nil
}

func (s *Service) findFont() (string, error) {
	for _, dir := range s.fontDirs {
		path := filepath.Join(dir, fontFile)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no %s found in %s; install ttf-dejavu or set REPORT_FONT_DIRS", fontFile, strings.Join(s.fontDirs, ", "))
}

// FileName builds the download file name for a report.
func FileName(res *triage.AnalysisResult, ext string) string {
	name := strings.ReplaceAll(res.PatientName, " ", "_")
	if name == "" {
		name = "patient"
	}
	return fmt.Sprintf("symptom_analysis_%s_%s.%s", name, res.GeneratedAt.Format("20060102"), ext)
}
