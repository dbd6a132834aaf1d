package domain

import "fmt"

var successAdjectives = []string{
	"unstoppable",
	"mighty",
	"relentless",
	"brilliant",
	"legendary",
	"dazzling",
}

var successNouns = []string{
	"team of wonders",
	"productivity machine",
	"band of finishers",
	"crew of champions",
	"meeting-ending powerhouse",
}

var successStatements = []string{
	"The train of progress has no brakes",
	"Another meeting down, nothing left standing",
	"That agenda never stood a chance",
	"Momentum looks good on this team",
	"High fives all around",
}

// MakeSuccessExpression pairs a random adjective with a random noun for the
// meeting summary headline. intn picks a number in [0, n); callers inject it
// (contract.IntN) so the generated copy is deterministic under test.
func MakeSuccessExpression(intn func(n int) int) string {
	adjective := successAdjectives[intn(len(successAdjectives))]
	noun := successNouns[intn(len(successNouns))]
	return fmt.Sprintf("%s %s", adjective, noun)
}

// MakeSuccessStatement picks the closing line for the meeting summary.
func MakeSuccessStatement(intn func(n int) int) string {
	return successStatements[intn(len(successStatements))]
}
