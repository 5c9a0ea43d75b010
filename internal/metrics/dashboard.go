// Package metrics computes the dashboard summary over a user's full plan
// list, held in memory. All aggregates are exact; the input is never
// paginated.
package metrics

import (
	"sort"
	"time"

	"github.com/luispedrilho/genutra-backend/internal/models"
)

// UltimoPlano reports the plan with the latest calendar date.
type UltimoPlano struct {
	Data     string `json:"data"`
	Nome     string `json:"nome"`
	Objetivo string `json:"objetivo"`
}

// ObjetivoContagem is one entry of the topObjetivos ranking.
type ObjetivoContagem struct {
	Objetivo string `json:"objetivo"`
	Total    int    `json:"total"`
}

// Dashboard is the aggregate returned by GET /dashboard.
type Dashboard struct {
	TotalPlanos        int                `json:"totalPlanos"`
	PlanosPorMes       map[string]int     `json:"planosPorMes"`
	TotalPacientes     int                `json:"totalPacientes"`
	PlanosPorObjetivo  map[string]int     `json:"planosPorObjetivo"`
	UltimoPlano        *UltimoPlano       `json:"ultimoPlano"`
	PlanosUltimos7Dias int                `json:"planosUltimos7Dias"`
	TopObjetivos       []ObjetivoContagem `json:"topObjetivos"`
}

// Aggregate folds the plan list into the dashboard shape. With zero records
// it returns counts of zero, empty mappings, a null ultimoPlano and an empty
// topObjetivos sequence without touching date parsing or sorting.
func Aggregate(plans []models.Plan, now time.Time) Dashboard {
	d := Dashboard{
		PlanosPorMes:      map[string]int{},
		PlanosPorObjetivo: map[string]int{},
		TopObjetivos:      []ObjetivoContagem{},
	}
	if len(plans) == 0 {
		return d
	}

	d.TotalPlanos = len(plans)

	pacientes := map[string]struct{}{}
	// Objetivos in order of first occurrence; Go maps do not keep it.
	objetivoOrder := []string{}
	sevenDaysAgo := now.Add(-7 * 24 * time.Hour)

	for _, p := range plans {
		if len(p.Data) >= 7 {
			d.PlanosPorMes[p.Data[:7]]++
		}

		// Exact string match, no normalization
		pacientes[p.Nome] = struct{}{}

		if _, seen := d.PlanosPorObjetivo[p.Objetivo]; !seen {
			objetivoOrder = append(objetivoOrder, p.Objetivo)
		}
		d.PlanosPorObjetivo[p.Objetivo]++

		// Last-seen-wins on equal dates; lexicographic comparison works on
		// YYYY-MM-DD strings.
		if d.UltimoPlano == nil || p.Data >= d.UltimoPlano.Data {
			d.UltimoPlano = &UltimoPlano{Data: p.Data, Nome: p.Nome, Objetivo: p.Objetivo}
		}

		if t, err := time.Parse("2006-01-02", p.Data); err == nil && !t.Before(sevenDaysAgo) {
			d.PlanosUltimos7Dias++
		}
	}

	d.TotalPacientes = len(pacientes)

	// Ties keep first-occurrence order thanks to the stable sort.
	sort.SliceStable(objetivoOrder, func(i, j int) bool {
		return d.PlanosPorObjetivo[objetivoOrder[i]] > d.PlanosPorObjetivo[objetivoOrder[j]]
	})
	for i, objetivo := range objetivoOrder {
		if i == 3 {
			break
		}
		d.TopObjetivos = append(d.TopObjetivos, ObjetivoContagem{
			Objetivo: objetivo,
			Total:    d.PlanosPorObjetivo[objetivo],
		})
	}

	return d
}
