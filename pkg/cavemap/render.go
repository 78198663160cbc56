package cavemap

import (
	"fmt"
	"strings"

	"cave-combat/internal/domain"
)

// Render рисует текущее состояние боя: карта построчно, справа от строки -
// HP агентов этой строки, например "#..G.E#   G(200), E(197)".
func Render(reg *domain.Registry) string {
	cave := reg.Cave()
	var sb strings.Builder
	units := make([]string, 0, 8)

	for y := 0; y < cave.Height(); y++ {
		units = units[:0]
		for x := 0; x < cave.Width(); x++ {
			p := domain.Position{X: x, Y: y}
			if a := reg.AgentAt(p); a != nil {
				sb.WriteByte(a.Faction.Glyph())
				units = append(units, fmt.Sprintf("%c(%d)", a.Faction.Glyph(), a.HP))
				continue
			}
			if cave.IsOpen(p) {
				sb.WriteByte(GlyphFloor)
			} else {
				sb.WriteByte(GlyphWall)
			}
		}
		if len(units) > 0 {
			sb.WriteString("   ")
			sb.WriteString(strings.Join(units, ", "))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
