package domain

// Choice is one of the four answer letters.
type Choice int

const (
	ChoiceA Choice = iota
	ChoiceB
	ChoiceC
	ChoiceD
)

// ToChoice decodes a single uppercase letter token.
func ToChoice(token string) (Choice, error) {
	switch token {
	case "A":
		return ChoiceA, nil
	case "B":
		return ChoiceB, nil
	case "C":
		return ChoiceC, nil
	case "D":
		return ChoiceD, nil
	}
	return 0, ErrInvalidAnswer
}

// Letter renders the choice as its token.
func (c Choice) Letter() string {
	return string(rune('A' + c))
}

// Index is the position of the choice in a question's choice list.
func (c Choice) Index() int {
	return int(c)
}

func (c Choice) String() string {
	return c.Letter()
}

// ChoiceLetter returns the letter printed in front of choice index i.
func ChoiceLetter(i int) string {
	return string(rune('A' + i))
}
