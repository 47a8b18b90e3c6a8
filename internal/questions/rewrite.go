package questions

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// optionPrefix marks a correct_answer that names an option by letter,
// e.g. "Option c".
const optionPrefix = "Option "

// Rewrite converts every record in order, numbering them from FirstID.
// It stops at the first bad record and returns no partial output.
func Rewrite(records []*InputQuestion) ([]Question, error) {
	out := make([]Question, 0, len(records))
	id := FirstID
	for i, rec := range records {
		if rec == nil {
			return nil, &RecordError{Index: i, Err: ErrNullRecord}
		}
		q, err := RewriteRecord(*rec, id)
		if err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}
		out = append(out, q)
		id++
	}
	return out, nil
}

// RewriteRecord converts a single record and assigns it the given id.
//
// Options are lettered by position starting at 'a'. An option is the
// correct one when its text equals correct_answer, or when
// correct_answer reads "Option X" and X lower-cased is the option's
// letter. Every matching option overwrites the previous one, so the last
// match wins. No match leaves CorrectAnswer nil.
func RewriteRecord(rec InputQuestion, id int) (Question, error) {
	if rec.Question == nil {
		return Question{}, fmt.Errorf("%w: question", ErrMissingField)
	}
	if rec.Options == nil {
		return Question{}, fmt.Errorf("%w: options", ErrMissingField)
	}
	if rec.CorrectAnswer == nil {
		return Question{}, fmt.Errorf("%w: correct_answer", ErrMissingField)
	}

	correct := *rec.CorrectAnswer
	opts := make([]Option, 0, len(*rec.Options))
	var correctID *string

	for i, opt := range *rec.Options {
		if opt == nil {
			return Question{}, fmt.Errorf("%w: options[%d]", ErrMissingField, i)
		}
		text := *opt
		letter := OptionLetter(i)
		opts = append(opts, Option{ID: letter, Text: text})

		ok, err := isCorrect(text, letter, correct)
		if err != nil {
			return Question{}, err
		}
		if ok {
			correctID = &letter
		}
	}

	return Question{
		ID:            id,
		Question:      *rec.Question,
		Options:       opts,
		CorrectAnswer: correctID,
	}, nil
}

// OptionLetter returns the identifier for the option at zero-based
// position i: "a", "b", "c", ...
func OptionLetter(i int) string {
	return string(rune('a' + i))
}

// isCorrect reports whether the option with the given text and letter is
// the one named by correct. A verbatim text match skips the letter check.
func isCorrect(text, letter, correct string) (bool, error) {
	if text == correct {
		return true, nil
	}
	rest, ok := strings.CutPrefix(correct, optionPrefix)
	if !ok {
		return false, nil
	}
	r, size := utf8.DecodeRuneInString(rest)
	if size == 0 {
		return false, ErrMalformedAnswer
	}
	return string(unicode.ToLower(r)) == letter, nil
}
