// Package combat resolves battle rounds between two armies. It is pure
// logic with no I/O; invalid positions reported by the army container
// are skipped rather than treated as errors.
package combat

import (
	"github.com/osse101/BattleArena_Go/internal/army"
	"github.com/osse101/BattleArena_Go/internal/domain"
)

// MinDamage is the floor applied to every hit, so every hit wears the defender down
const MinDamage = 1

// RoundReport is the outcome of one resolved round
type RoundReport struct {
	Outcome    domain.Outcome        `json:"outcome"`
	Damage     []domain.DamageRecord `json:"damage"`
	Casualties []domain.Casualty     `json:"casualties,omitempty"`
}

// DamageBy returns the total damage dealt by one side during the round
func (r *RoundReport) DamageBy(side domain.Side) int {
	total := 0
	for _, rec := range r.Damage {
		if rec.Side == side {
			total += rec.Damage
		}
	}
	return total
}

// Damage computes the hit points removed by one hit: attack minus
// defense, never less than MinDamage.
func Damage(attack, defense int) int {
	return max(attack-defense, MinDamage)
}

// Attack runs one attack phase of attacking against defending and
// returns a record of every hit landed. Attacker positions are taken
// from a snapshot at phase start; defenders are read again before each
// hit so stacked hits see the latest hit points.
func Attack(attacking, defending *army.Army, side domain.Side) []domain.DamageRecord {
	attackers := snapshot(attacking)
	var records []domain.DamageRecord

	for position, attacker := range attackers {
		for slot := domain.ItemSlotFirst; slot <= domain.ItemSlotSecond; slot++ {
			item := attacker.ItemAt(slot)
			if item == nil || !item.Reaches(position) {
				continue
			}

			last := min(item.Radius, defending.Top())
			for target := 0; target <= last; target++ {
				var defender domain.Unit
				if !defending.PeekAt(target, &defender) {
					continue
				}

				dmg := Damage(item.Attack, defender.TotalDefense())
				if !defending.ApplyDamage(target, dmg) {
					continue
				}

				records = append(records, domain.DamageRecord{
					Side:             side,
					Attacker:         attacker.Name,
					AttackerPosition: position,
					Item:             item.Name,
					ItemSlot:         slot,
					Defender:         defender.Name,
					DefenderPosition: target,
					Damage:           dmg,
					DefenderHP:       defender.HP - dmg,
				})
			}
		}
	}

	return records
}

// ResolveRound runs one full round: army1 attacks army2, army2 attacks
// army1, then defeated units are removed from both armies. Every unit
// present at the start of the round fires in it, including units that
// fall during the same round.
func ResolveRound(army1, army2 *army.Army) *RoundReport {
	report := &RoundReport{}
	report.Damage = append(report.Damage, Attack(army1, army2, domain.Army1)...)
	report.Damage = append(report.Damage, Attack(army2, army1, domain.Army2)...)

	report.Casualties = append(report.Casualties, RemoveDefeated(army1, domain.Army1)...)
	report.Casualties = append(report.Casualties, RemoveDefeated(army2, domain.Army2)...)

	report.Outcome = Decide(army1, army2)
	return report
}

// RemoveDefeated pops every unit with no hit points left. The sweep runs
// from the back so compaction never moves a unit that is still to be
// checked.
func RemoveDefeated(a *army.Army, side domain.Side) []domain.Casualty {
	var casualties []domain.Casualty
	for position := a.Top(); position >= 0; position-- {
		var u domain.Unit
		if !a.PeekAt(position, &u) || u.IsAlive() {
			continue
		}
		if a.PopAt(position) {
			casualties = append(casualties, domain.Casualty{Side: side, Name: u.Name, Position: position})
		}
	}
	return casualties
}

// Decide maps the state of both armies to a round outcome
func Decide(army1, army2 *army.Army) domain.Outcome {
	switch {
	case army1.IsEmpty() && army2.IsEmpty():
		return domain.OutcomeDraw
	case army1.IsEmpty():
		return domain.OutcomeArmy2Wins
	case army2.IsEmpty():
		return domain.OutcomeArmy1Wins
	default:
		return domain.OutcomeContinue
	}
}

func snapshot(a *army.Army) []domain.Unit {
	units := make([]domain.Unit, 0, a.Count())
	for position := 0; position <= a.Top(); position++ {
		var u domain.Unit
		if a.PeekAt(position, &u) {
			units = append(units, u)
		}
	}
	return units
}
