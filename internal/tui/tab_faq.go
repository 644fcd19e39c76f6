package tui

import (
	"strings"

	"github.com/shenergia/solarcalc/internal/tui/components"
	"github.com/shenergia/solarcalc/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type faqItem struct {
	question string
	answer   string
}

var faqItems = []faqItem{
	{
		"Quanto posso economizar com energia solar?",
		"A economia chega a 80% da conta de luz. O restante corresponde à taxa mínima da distribuidora e à iluminação pública.",
	},
	{
		"Em quanto tempo o sistema se paga?",
		"Em média entre 3 e 5 anos, dependendo do tipo de instalação e da tarifa local. Depois disso, a economia é retorno líquido.",
	},
	{
		"O sistema funciona em dias nublados?",
		"Sim. A geração diminui, mas não para. O dimensionamento considera a média anual de irradiação da sua região.",
	},
	{
		"Qual a vida útil dos painéis?",
		"Os módulos têm garantia de performance de 25 anos e vida útil que passa de 30 anos com manutenção mínima.",
	},
	{
		"Preciso de autorização da distribuidora?",
		"Sim, e nós cuidamos de todo o processo de homologação e da troca do medidor bidirecional.",
	},
	{
		"Existe financiamento?",
		"Trabalhamos com linhas de financiamento em que a parcela costuma ficar abaixo do valor economizado na conta.",
	},
}

// faqState is the accordion: at most one item is open at a time.
type faqState struct {
	cursor int
	open   int // -1 when all items are closed
}

func newFAQState() faqState {
	return faqState{open: -1}
}

// toggle opens item i and closes the others, or closes i if it is open.
func (f *faqState) toggle(i int) {
	if f.open == i {
		f.open = -1
		return
	}
	f.open = i
}

func (f *faqState) move(up bool) {
	if up {
		f.cursor = max(f.cursor-1, 0)
		return
	}
	f.cursor = min(f.cursor+1, len(faqItems)-1)
}

func (a App) updateFAQKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		a.faq.move(false)
	case "k", "up":
		a.faq.move(true)
	case "enter", " ":
		a.faq.toggle(a.faq.cursor)
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) renderFAQTab(cw int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	questionStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface).Bold(true)
	answerStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(inner - 4).
		PaddingLeft(4)

	var b strings.Builder
	for i, item := range faqItems {
		if i > 0 {
			b.WriteString("\n")
		}
		marker := "+ "
		if i == a.faq.open {
			marker = "− "
		}
		style := questionStyle
		if i == a.faq.cursor {
			style = selectedStyle
		}
		b.WriteString(markerStyle.Render(marker))
		b.WriteString(style.Render(item.question))
		if i == a.faq.open {
			b.WriteString("\n")
			b.WriteString(answerStyle.Render(item.answer))
		}
	}

	return components.ContentCard("Perguntas frequentes", b.String(), cw)
}
