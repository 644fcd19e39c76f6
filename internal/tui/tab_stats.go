package tui

import (
	"strings"

	"github.com/shenergia/solarcalc/internal/cli"
	"github.com/shenergia/solarcalc/internal/tui/components"
	"github.com/shenergia/solarcalc/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statKeyPrefix = "stat."

// stat is one company figure on the Números tab.
type stat struct {
	key    string
	label  string
	target float64
	suffix string
}

var companyStats = []stat{
	{key: statKeyPrefix + "projects", label: "Projetos instalados", target: 850, suffix: "+"},
	{key: statKeyPrefix + "kwp", label: "kWp instalados", target: 4200, suffix: "+"},
	{key: statKeyPrefix + "clients", label: "Clientes satisfeitos", target: 98, suffix: "%"},
	{key: statKeyPrefix + "years", label: "Anos de experiência", target: 12},
}

// statsState tracks whether the counters have played. They count up once,
// the first time the tab is shown.
type statsState struct {
	seen bool
}

func (a App) startCounters() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(companyStats))
	for _, s := range companyStats {
		cmds = append(cmds, a.counters.Animate(s.key, s.target))
	}
	return tea.Batch(cmds...)
}

func (a App) renderStatsTab(cw int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	metrics := make([]components.Metric, len(companyStats))
	for i, s := range companyStats {
		metrics[i] = components.Metric{
			Label: s.label,
			Value: cli.FormatNumber(a.counters.Display(s.key)) + s.suffix,
		}
	}

	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	bulletStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface).Bold(true)

	var why strings.Builder
	for i, d := range differentials {
		if i > 0 {
			why.WriteString("\n")
		}
		why.WriteString(bulletStyle.Render("● "))
		why.WriteString(textStyle.Render(d.title))
		why.WriteString("\n")
		why.WriteString(mutedStyle.Render("  " + truncStr(d.text, inner-2)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.MetricCardRow(metrics, cw, 0),
		components.ContentCard("Por que a SH Energia Solar", why.String(), cw),
	)
}

var differentials = []struct{ title, text string }{
	{"Projeto sob medida", "Dimensionamento feito a partir do seu consumo real e do seu telhado."},
	{"Instalação certificada", "Equipe própria com engenheiros responsáveis e homologação junto à distribuidora."},
	{"Monitoramento", "Acompanhe a geração do seu sistema pelo celular, em tempo real."},
	{"Garantia", "Até 25 anos de garantia de performance nos módulos fotovoltaicos."},
}
