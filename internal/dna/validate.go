package dna

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator with the rules for sequences and descriptions:
//
//	codons      length is a multiple of CodonLength
//	nucleotides only A, T, C and G
//	singleline  no \n or \r
func newValidator() *validator.Validate {
	v := validator.New()
	rules := map[string]validator.Func{
		"codons":      isCodons,
		"nucleotides": isNucleotides,
		"singleline":  isSingleLine,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("failed to register %s validation: %v", tag, err))
		}
	}
	return v
}

func isCodons(fl validator.FieldLevel) bool {
	return len(fl.Field().String())%CodonLength == 0
}

func isNucleotides(fl validator.FieldLevel) bool {
	seq := fl.Field().String()
	for i := 0; i < len(seq); i++ {
		if _, ok := complements[seq[i]]; !ok {
			return false
		}
	}
	return true
}

func isSingleLine(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n")
}
