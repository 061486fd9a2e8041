package projects

import (
	petname "github.com/dustinkirkland/golang-petname"
)

const slugWords = 3

// returns a random three-word name such as "quickly-stable-lemur"
func GenerateSlug() string {
	return petname.Generate(slugWords, "-")
}
