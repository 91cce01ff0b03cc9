package fillerwords

// DefaultWords is the fixed seed list used when the store is empty.
// Covers common English and Hindi fillers. Hyphenated compounds like
// "uh-huh" are stored as single atomic tokens.
var DefaultWords = []string{
	"umm", "uh", "um", "so",
	"hmm", "hm", "ah", "er", "erm", "ok", "ahhh", "hmmm",
	"eh", "ehh", "uhh", "haan", "acha", "uh-huh",
}
