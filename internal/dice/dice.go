package dice

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	apperr "github.com/fableforge/gamemaster/internal/errors"
)

// RollResult holds the outcome of a dice roll
type RollResult struct {
	Total int
	Rolls []int
	Bonus int
	Count int
	Sides int
}

// Roll rolls count dice with the given number of sides and adds a bonus.
// Each die lands in [1, sides]; Total is the sum of all dice plus the bonus.
func Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, apperr.InvalidArgumentf("invalid dice count: %d", count)
	}

	if sides < 2 {
		return nil, apperr.InvalidArgumentf("invalid dice size: %d", sides)
	}

	total := 0
	out := make([]int, count)
	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
		total += roll
		out[i] = roll
	}

	return &RollResult{
		Total: total + bonus,
		Rolls: out,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}

// RollString rolls dice described by a "NdM" or "NdM+B" spec, e.g. "1d20" or
// "2d6+3". Anything else is rejected with an invalid argument error.
func RollString(diceString string) (*RollResult, error) {
	parts := strings.Split(diceString, "+")
	dice := diceString
	var bonus int
	var err error
	if len(parts) == 2 {
		bonus, err = strconv.Atoi(parts[1])
		if err != nil {
			return nil, apperr.InvalidArgumentf("invalid dice string %q", diceString)
		}
		dice = parts[0]
	} else if len(parts) > 2 {
		return nil, apperr.InvalidArgumentf("invalid dice string %q", diceString)
	}

	diceParts := strings.Split(dice, "d")
	if len(diceParts) != 2 {
		return nil, apperr.InvalidArgumentf("invalid dice string %q", diceString)
	}

	count, err := strconv.Atoi(diceParts[0])
	if err != nil {
		return nil, apperr.InvalidArgumentf("invalid dice string %q", diceString)
	}
	sides, err := strconv.Atoi(diceParts[1])
	if err != nil {
		return nil, apperr.InvalidArgumentf("invalid dice string %q", diceString)
	}

	return Roll(count, sides, bonus)
}

// String renders the roll the way the bot reports it, e.g. "**12** : [4,5]"
func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", ",")
	return fmt.Sprintf("**%d** : %s", r.Total, compact)
}
