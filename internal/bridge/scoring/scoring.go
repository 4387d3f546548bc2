// Package scoring implements the duplicate bridge score table.
package scoring

import "github.com/louisbranch/bridge-engine/internal/bridge"

// IsVulnerable reports whether the declarer's partnership is vulnerable.
func IsVulnerable(declarer bridge.Seat, vulnerability bridge.Vulnerability) bool {
	switch vulnerability {
	case bridge.VulnerableNone:
		return false
	case bridge.VulnerableBoth:
		return true
	case bridge.VulnerableNS:
		return declarer == bridge.North || declarer == bridge.South
	default:
		return declarer == bridge.East || declarer == bridge.West
	}
}

// TrickPoints returns the contract's trick points before bonuses: minors
// 20 per level, majors 30, no-trump 40 + 30 per further level; doubling
// multiplies the whole base by 2, redoubling by 4.
func TrickPoints(contract bridge.Contract) int {
	var base int
	switch contract.Strain {
	case bridge.BidClubs, bridge.BidDiamonds:
		base = 20 * contract.Level
	case bridge.BidHearts, bridge.BidSpades:
		base = 30 * contract.Level
	default:
		base = 40 + 30*(contract.Level-1)
	}

	switch {
	case contract.Redoubled:
		return base * 4
	case contract.Doubled:
		return base * 2
	default:
		return base
	}
}

// IsGame reports whether the contract's trick points reach game (100+).
func IsGame(contract bridge.Contract) bool {
	return TrickPoints(contract) >= 100
}

// trickValue is the per-trick value used for undoubled overtricks. NT
// overtricks are 30: only the first contracted trick is worth 40.
func trickValue(strain bridge.BidSuit) int {
	if strain == bridge.BidClubs || strain == bridge.BidDiamonds {
		return 20
	}
	return 30
}

func makingScore(contract bridge.Contract, overtricks int, vulnerable bool) int {
	trickPoints := TrickPoints(contract)

	bonus := 50
	if trickPoints >= 100 {
		if vulnerable {
			bonus = 500
		} else {
			bonus = 300
		}
	}

	switch contract.Level {
	case 6:
		if vulnerable {
			bonus += 750
		} else {
			bonus += 500
		}
	case 7:
		if vulnerable {
			bonus += 1500
		} else {
			bonus += 1000
		}
	}

	if contract.Redoubled {
		bonus += 100
	} else if contract.Doubled {
		bonus += 50
	}

	var overtrickPoints int
	switch {
	case contract.Redoubled:
		if vulnerable {
			overtrickPoints = overtricks * 400
		} else {
			overtrickPoints = overtricks * 200
		}
	case contract.Doubled:
		if vulnerable {
			overtrickPoints = overtricks * 200
		} else {
			overtrickPoints = overtricks * 100
		}
	default:
		overtrickPoints = overtricks * trickValue(contract.Strain)
	}

	return trickPoints + bonus + overtrickPoints
}

// doubledPenalty follows the stepped schedule: not vulnerable 100 then
// 200/200 then 300 per trick; vulnerable 200 then 300 per trick.
func doubledPenalty(undertricks int, vulnerable bool) int {
	total := 0
	for i := 1; i <= undertricks; i++ {
		switch {
		case vulnerable && i == 1:
			total += 200
		case vulnerable:
			total += 300
		case i == 1:
			total += 100
		case i <= 3:
			total += 200
		default:
			total += 300
		}
	}
	return total
}

func penalty(contract bridge.Contract, undertricks int, vulnerable bool) int {
	switch {
	case contract.Redoubled:
		return doubledPenalty(undertricks, vulnerable) * 2
	case contract.Doubled:
		return doubledPenalty(undertricks, vulnerable)
	case vulnerable:
		return undertricks * 100
	default:
		return undertricks * 50
	}
}

// Score computes the duplicate score for a contract given tricks won.
// Positive means made (trick points, game or partscore bonus, slam bonus,
// insult bonus, overtricks); negative means defeated (undertrick schedule).
func Score(contract bridge.Contract, tricksWon int, vulnerability bridge.Vulnerability) int {
	required := contract.Level + 6
	vulnerable := IsVulnerable(contract.Declarer, vulnerability)

	if tricksWon >= required {
		return makingScore(contract, tricksWon-required, vulnerable)
	}
	return -penalty(contract, required-tricksWon, vulnerable)
}
