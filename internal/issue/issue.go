// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	CapabilityNotBoundId Id = iota + 1
	CapabilityBrokenId
	AliasCollisionId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // links into the surety docs for this issue type
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

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	capabilityNotBoundIssue = &Issue{
		id: CapabilityNotBoundId,
		mdMsg: `
# Capability not bound!

You looked up an optional capability whose sibling package is not installed
in this binary.

## How optional capabilities work:
surety only exposes a capability when its sibling package was compiled in.
An absent sibling is not an error; the alias simply never appears.

## Things you can try:
- Add the sibling to your application and blank-import it:
~~~go
import _ "github.com/surety/surety-config"
~~~

- Check which capabilities this binary carries:
~~~
$ surety capability list
~~~`,
	}

	capabilityBrokenIssue = &Issue{
		id: CapabilityBrokenId,
		mdMsg: `
# Capability failed to initialize!

A sibling package is installed but returned an error while opening. surety
does not mask this: a present-but-broken dependency is a real defect, and
hiding it would leave the namespace silently half-initialized.

## Things you can try:
- Read the underlying error above; it is the sibling's own message, unmodified.
- Update the sibling package to a version compatible with this surety release.
- Run the doctor for a per-capability report:
~~~
$ surety capability doctor
~~~`,
	}

	aliasCollisionIssue = &Issue{
		id: AliasCollisionId,
		mdMsg: `
# Alias collision!

Two capability descriptors claim the same alias. Binding refuses to guess
which one wins; an order-dependent overwrite would be a defect, not a feature.

## Things you can try:
- Give each descriptor a distinct alias in your embedder code.
- If you did not supply custom descriptors, this is a bug in surety itself;
  please report it.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded!

The surety CLI found a config file but could not parse or validate it.

## Config file locations:
- Linux: ` + "`~/.config/surety/config.cue`" + `
- macOS: ` + "`~/Library/Application Support/surety/config.cue`" + `
- Windows: ` + "`%APPDATA%\\surety\\config.cue`" + `

## Things you can try:
- Check the file for CUE syntax errors.
- Compare against the expected settings:
~~~cue
ui: {
	color_scheme:  "auto"  // or "dark" / "light"
	verbose:       false
	glamour_theme: "auto"
}
~~~`,
	}

	issues = map[Id]*Issue{
		capabilityNotBoundIssue.Id(): capabilityNotBoundIssue,
		capabilityBrokenIssue.Id():   capabilityBrokenIssue,
		aliasCollisionIssue.Id():     aliasCollisionIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
