package trends

import mapset "github.com/deckarep/golang-set/v2"

// stopWords is a standard English exclusion list plus the filler that job
// descriptions repeat endlessly (team, role, work, ...). Tokens here never
// surface as trend terms.
var stopWords = mapset.NewThreadUnsafeSet(
	"a", "an", "and", "are", "as", "at", "be", "been", "but", "by", "can",
	"do", "for", "from", "had", "has", "have", "he", "her", "his", "how",
	"i", "if", "in", "into", "is", "it", "its", "may", "more", "most", "no",
	"not", "of", "on", "one", "or", "our", "out", "she", "should", "so",
	"some", "such", "than", "that", "the", "their", "them", "then", "there",
	"these", "they", "this", "to", "up", "us", "was", "we", "well", "were",
	"what", "when", "which", "who", "will", "with", "would", "you", "your",

	"about", "across", "after", "all", "also", "able", "each", "get", "new",
	"other", "over", "per", "set", "use", "used", "using", "very", "while",

	"apply", "candidate", "company", "experience", "job", "join", "looking",
	"opportunity", "position", "required", "requirements", "responsibilities",
	"role", "skills", "team", "work", "working", "years",
)
