package questions

// DefaultPath is the question file rewritten in place by the CLI.
const DefaultPath = "src/data/questions/II-A.json"

// FirstID is the id assigned to the first rewritten record.
const FirstID = 20001

// InputQuestion is a record in the free-text source format. Fields are
// pointers so that a missing key or a null can be told apart from an
// empty value.
type InputQuestion struct {
	Question      *string    `json:"question"`
	Options       *[]*string `json:"options"`
	CorrectAnswer *string    `json:"correct_answer"`
}

// Option is a lettered answer choice.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is a record in the converted format. Field order is the
// serialized key order.
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []Option `json:"options"`
	CorrectAnswer *string  `json:"correct_answer"`
}

// Result summarizes a completed rewrite.
type Result struct {
	Path       string
	Count      int
	Unresolved []int // ids of records with a null correct_answer
}
