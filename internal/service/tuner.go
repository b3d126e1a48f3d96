package service

import "github.com/mealmuse/recipechat/backend/internal/store"

// Tuning directives injected into the prompt. The wording reaches the
// model verbatim.
const (
	DirectiveMoreComplex      = "Make recipes slightly more complex and advanced."
	DirectiveSimplify         = "Simplify recipes with fewer cooking techniques."
	DirectiveMoreIngredients  = "Include more diverse ingredients."
	DirectiveFewerIngredients = "Use fewer ingredients for simpler dishes."
	DirectiveFasterRecipes    = "Prioritize faster, quick-cook recipes."
	DirectiveSlowerRecipes    = "Add more slow-cook or longer recipes for flavor depth."
	DirectiveKeepBalance      = "Maintain your current balance."
)

// tuningAxis holds two opposing counters; the strictly larger side emits
// its directive, a tie emits nothing.
type tuningAxis struct {
	signalA    string
	signalB    string
	directiveA string
	directiveB string
}

var tuningAxes = []tuningAxis{
	{store.SignalMakeHarder, store.SignalMakeEasier, DirectiveMoreComplex, DirectiveSimplify},
	{store.SignalAddIngredients, store.SignalReduceIngredients, DirectiveMoreIngredients, DirectiveFewerIngredients},
	{store.SignalShorterTime, store.SignalLongerTime, DirectiveFasterRecipes, DirectiveSlowerRecipes},
}

// PromptTuner converts accumulated preference counts into prompt
// directives.
type PromptTuner struct{}

func NewPromptTuner() *PromptTuner {
	return &PromptTuner{}
}

// Tune returns the directives for the given counters in fixed axis order:
// difficulty, ingredient variety, cook time. When no axis leans either way
// the single keep-balance directive is returned.
func (t *PromptTuner) Tune(counters store.Counters) []string {
	var directives []string
	for _, axis := range tuningAxes {
		a, b := counters[axis.signalA], counters[axis.signalB]
		switch {
		case a > b:
			directives = append(directives, axis.directiveA)
		case b > a:
			directives = append(directives, axis.directiveB)
		}
	}
	if len(directives) == 0 {
		return []string{DirectiveKeepBalance}
	}
	return directives
}
