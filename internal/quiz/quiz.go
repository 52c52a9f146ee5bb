// Package quiz holds the fixed general-knowledge question bank and scoring.
package quiz

// Question is a single multiple-choice question.
type Question struct {
	Prompt       string
	Options      []string
	CorrectIndex int
}

// AnswerSet maps question index to the selected option index. It is
// partial until the learner has answered every question.
type AnswerSet map[int]int

// questions is the fixed bank. Content and order are constant for the
// life of the process.
var questions = []Question{
	{
		Prompt:       "What is 2 + 2?",
		Options:      []string{"8", "6", "4", "3"},
		CorrectIndex: 2,
	},
	{
		Prompt:       "In what year did the Berlin Wall fall?",
		Options:      []string{"1985", "1989", "1991", "1978"},
		CorrectIndex: 1,
	},
	{
		Prompt:       "Who wrote 'One Hundred Years of Solitude'?",
		Options:      []string{"Julio Cortázar", "Gabriel García Márquez", "Mario Vargas Llosa", "Pablo Neruda"},
		CorrectIndex: 1,
	},
	{
		Prompt:       "Which chemical element has the symbol 'Au'?",
		Options:      []string{"Silver", "Gold", "Aluminium", "Argon"},
		CorrectIndex: 1,
	},
	{
		Prompt:       "Which painter is known for cutting off his own ear?",
		Options:      []string{"Pablo Picasso", "Salvador Dalí", "Vincent van Gogh", "Claude Monet"},
		CorrectIndex: 2,
	},
	{
		Prompt:       "What is the longest river in the world?",
		Options:      []string{"Nile", "Amazon", "Yangtze", "Mississippi"},
		CorrectIndex: 1,
	},
}

// Questions returns the fixed ordered question bank.
func Questions() []Question {
	return questions
}

// Len returns the number of questions in the bank.
func Len() int {
	return len(questions)
}

// Score counts correct selections in answers. Unanswered questions
// count as incorrect; indexes outside the bank are ignored.
func Score(answers AnswerSet) int {
	score := 0
	for i, q := range questions {
		if sel, ok := answers[i]; ok && sel == q.CorrectIndex {
			score++
		}
	}
	return score
}

// Complete reports whether answers covers every question index.
func Complete(answers AnswerSet) bool {
	for i := range questions {
		if _, ok := answers[i]; !ok {
			return false
		}
	}
	return true
}
