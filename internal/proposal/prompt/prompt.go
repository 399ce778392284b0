// Package prompt builds the chat messages sent to the completion service.
package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/sonaeson/groupbuy-proposal/internal/proposal/domain"
)

// SystemPersona establishes the assistant as a group-purchase proposal writer.
const SystemPersona = "당신은 전문적인 공동구매 제안서 작성자입니다. 명확하고 전문적인 제안서를 작성해주세요."

// Sections are the headings the model is asked to produce, in order.
var Sections = []string{
	"제품 소개",
	"타겟 고객 분석",
	"기대 효과 및 매출",
	"마케팅 계획",
	"브랜드 협업 요청",
}

const proposalTemplate = `다음 정보를 바탕으로 공동구매 제안서를 작성해주세요:

제품명: {{.Product}}
대상 고객: {{.Target}}
판매 목표 수량: {{.Goal}}

제안서는 다음 {{len .Sections}}개 섹션으로 구성해주세요:
{{range .Sections}}{{.Number}}. {{.Title}}
{{end}}
각 섹션은 명확하고 전문적으로 작성해주세요.`

var tmpl = template.Must(template.New("proposal").Parse(proposalTemplate))

type section struct {
	Number int
	Title  string
}

type templateData struct {
	Product  string
	Target   string
	Goal     string
	Sections []section
}

// Build renders the user prompt for req. The output depends only on the
// three request fields.
func Build(req domain.ProposalRequest) (string, error) {
	data := templateData{
		Product:  req.Product,
		Target:   req.Target,
		Goal:     req.Goal.String(),
		Sections: make([]section, len(Sections)),
	}
	for i, title := range Sections {
		data.Sections[i] = section{Number: i + 1, Title: title}
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return b.String(), nil
}
