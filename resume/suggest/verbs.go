package suggest

// actionVerbs is the shared lexicon of strong opening verbs. It is fixed at
// compile time; ActionVerbs hands out copies so no caller can mutate it.
var actionVerbs = [...]string{
	"Achieved", "Accelerated", "Accomplished", "Advised", "Analyzed", "Built", "Collaborated",
	"Created", "Decreased", "Delivered", "Designed", "Developed", "Directed", "Drove",
	"Enhanced", "Established", "Exceeded", "Executed", "Expanded", "Generated", "Grew",
	"Implemented", "Improved", "Increased", "Initiated", "Launched", "Led", "Managed",
	"Optimized", "Orchestrated", "Reduced", "Redesigned", "Resolved", "Spearheaded",
	"Streamlined", "Strengthened", "Transformed",
}

// ActionVerbs returns the action-verb lexicon in its fixed order.
func ActionVerbs() []string {
	return append([]string(nil), actionVerbs[:]...)
}
