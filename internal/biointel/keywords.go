package biointel

// Curated keyword sets for the default classifier. All matching is
// case-insensitive substring matching; multi-word entries must appear as a
// contiguous phrase.

// baitSpeciesKeywords name forage species. At least one must match before
// intensity modifiers are considered.
var baitSpeciesKeywords = []string{
	"herring",
	"candlefish",
	"sand lance",
	"sandlance",
	"anchovy",
	"anchovies",
	"squid",
	"needlefish",
	"bait ball",
	"baitball",
	"bait",
}

// baitMassiveKeywords escalate to the top category and set the override flag.
var baitMassiveKeywords = []string{
	"everywhere",
	"massive",
	"balls",
	"boiling",
	"thick",
	"acres of",
	"solid bait",
	"blacked out",
}

// baitScatteredKeywords demote to the scattered category.
var baitScatteredKeywords = []string{
	"scattered",
	"spotty",
	"a few",
	"thin",
	"sparse",
	"not much bait",
}

// baitAbundantKeywords promote to the abundant category.
var baitAbundantKeywords = []string{
	"lots of",
	"plenty of",
	"good bait",
	"big schools",
	"stacked",
}

// predatorKeywords name apex predators whose working presence moves fish out
// or shuts the bite down.
var predatorKeywords = []string{
	"orca",
	"orcas",
	"killer whale",
	"killer whales",
	"blackfish",
}

// predatorMinorKeywords name nuisance predators: suspected-level signal only.
var predatorMinorKeywords = []string{
	"seal",
	"seals",
	"sea lion",
	"sea lions",
}

// shutdownKeywords phrase a confirmed shutdown regardless of which predator
// was sighted.
var shutdownKeywords = []string{
	"shutdown",
	"shut down",
	"shut it down",
	"lockjaw",
	"bite died",
	"went dead",
}

// runStrongKeywords signal a strong run or hot bite.
var runStrongKeywords = []string{
	"limits",
	"limited out",
	"wide open",
	"fish everywhere",
	"on fire",
	"hot bite",
	"double digits",
}

// runModerateKeywords signal a steady, unremarkable bite.
var runModerateKeywords = []string{
	"steady",
	"picking away",
	"a fish here and there",
	"decent",
	"fair",
}

// runWeakKeywords signal a weak run or dead water.
var runWeakKeywords = []string{
	"slow",
	"dead",
	"skunked",
	"tough",
	"not a touch",
	"no sign",
}
