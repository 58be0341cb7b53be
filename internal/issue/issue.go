// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InvalidRangeId Id = iota + 1
	InvalidSyllableCountId
	InvalidPatternId
	InvalidGlobId
	ConfigLoadFailedId
	InvalidWordId
	LexiconLoadFailedId
	InvalidCategoryId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation about this issue type
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue help with the given glamour style ("auto",
// "dark", "light" or a style file path).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "](" + string(link) + ")\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "](" + string(link) + ")\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	invalidRangeIssue = &Issue{
		id: InvalidRangeId,
		mdMsg: `
# Invalid syllable range!

The minimum must be at least 1 and the maximum must not be smaller than the minimum.

## Things you can try:
- Pass a single count to generate words of exactly that length:
~~~
$ palinimi 2
~~~

- Pass both bounds, smallest first:
~~~
$ palinimi 1 3
~~~

- Check ` + "`generate.min_syllables`" + ` and ` + "`generate.max_syllables`" + ` in your config:
~~~
$ palinimi config show
~~~`,
	}

	invalidSyllableCountIssue = &Issue{
		id: InvalidSyllableCountId,
		mdMsg: `
# Invalid syllable count!

Word counts can only be computed for a positive number of syllables.

## Things you can try:
- Ask for a positive length:
~~~
$ palinimi syllables --stats --up-to 3
~~~`,
	}

	invalidPatternIssue = &Issue{
		id: InvalidPatternId,
		mdMsg: `
# Invalid regular expression!

The pattern given to ` + "`--regex`" + ` does not compile.
Patterns use Go's RE2 syntax and only have to match at the start of a word.

## Things you can try:
- Check for unbalanced parentheses or brackets
- Keep words starting with "to":
~~~
$ palinimi 2 -r to
~~~

- Keep words ending in "la":
~~~
$ palinimi 2 -r '.*la$'
~~~`,
		extLinks: []HttpLink{"https://github.com/google/re2/wiki/Syntax"},
	}

	invalidGlobIssue = &Issue{
		id: InvalidGlobId,
		mdMsg: `
# Invalid glob!

The pattern given to ` + "`--glob`" + ` is malformed. Globs must match the whole word.

## Things you can try:
- Close every ` + "`[`" + ` and ` + "`{`" + `
- Keep words ending in "la":
~~~
$ palinimi 2 -g '*la'
~~~

- Keep words starting with "ka" or "ko":
~~~
$ palinimi 2 -g 'k{a,o}*'
~~~`,
		extLinks: []HttpLink{"https://github.com/bmatcuk/doublestar#patterns"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.
palinimi will continue with the built-in defaults.

## Things you can try:
- Show where palinimi looks for its config file:
~~~
$ palinimi config path
~~~

- Regenerate a valid file:
~~~
$ palinimi config init
~~~

- Check the file against this example:
~~~cue
generate: {
	min_syllables: 1
	max_syllables: 2
	exclude: pu: true
	pattern: ".*"
}
output: format: "plain"
ui: color_scheme: "auto"
~~~`,
	}

	invalidWordIssue = &Issue{
		id: InvalidWordId,
		mdMsg: `
# Not a valid Toki Pona word!

A word is a chain of syllables of the shape (C)V(n) where:
- only the first syllable may start with a vowel
- ji, ti, wo and wu are not allowed
- m or n may not start a syllable right after a syllable ending in n

## Things you can try:
- List the legal syllables:
~~~
$ palinimi syllables
~~~

- Generate similar words instead:
~~~
$ palinimi 2 -r ka
~~~`,
	}

	lexiconLoadFailedIssue = &Issue{
		id: LexiconLoadFailedId,
		mdMsg: `
# Failed to load lexicon!

The lexicon file given with --lexicon or generate.lexicon could not be read
or does not match the lexicon schema. Every category is a list of words:

~~~cue
pu: ["a", "akesi", "ala"]
ku_suli: ["kin", "ku"]
ku_lili: ["majuna"]
su: ["su"]
reserved: ["ju", "lu", "nu", "su", "u"]
~~~

## Things you can try:
- Print the built-in word lists as a starting point:
~~~
$ palinimi lexicon pu
~~~

- Run without a custom lexicon:
~~~
$ palinimi 2 --lexicon ''
~~~`,
	}

	invalidCategoryIssue = &Issue{
		id: InvalidCategoryId,
		mdMsg: `
# Unknown lexical category!

The known categories are pu, ku-suli, ku-lili, su and reserved.
Underscores may replace the hyphens and case is ignored.

## Things you can try:
- List every category with its size:
~~~
$ palinimi lexicon
~~~

- Print the words of one category:
~~~
$ palinimi lexicon ku-suli
~~~`,
	}

	issues = map[Id]*Issue{
		invalidRangeIssue.Id():         invalidRangeIssue,
		invalidSyllableCountIssue.Id(): invalidSyllableCountIssue,
		invalidPatternIssue.Id():       invalidPatternIssue,
		invalidGlobIssue.Id():          invalidGlobIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		invalidWordIssue.Id():          invalidWordIssue,
		lexiconLoadFailedIssue.Id():    lexiconLoadFailedIssue,
		invalidCategoryIssue.Id():      invalidCategoryIssue,
	}
)

// Values returns every catalog entry ordered by ID.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
