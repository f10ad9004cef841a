package layout

// Default returns the built-in preview layout.
func Default() *Layout {
	l, err := Parse([]byte(defaultYAML))
	if err != nil {
		panic("layout: built-in layout is invalid: " + err.Error())
	}
	return l
}

const defaultYAML = `
title: designkit
groups:
  - id: account
    title: Account
    variant: pill
    tabs:
      - label: Profile
        heading: Profile
        body: |
          Name, avatar and contact details.
          Press enter on a tab to confirm it.
      - label: Security
        badge: {text: "2", variant: negative}
        heading: Security
        body: Two sessions need review.
      - label: Billing
        disabled: true
        body: Billing is managed by your organisation.
      - label: Notifications
        badge: {text: new, variant: positive}
        heading: Notifications
        body: Choose which events reach your inbox.
  - id: docs
    title: Documentation
    variant: underline
    default: typography
    tabs:
      - label: Badge
        heading: Badge
        body: Neutral, positive and negative variants.
      - label: Typography
        heading: Typography
        body: Body and header variants with regular, medium and bold weights.
      - label: Stack
        heading: Stack
        body: Row or column layout with spacing tokens.
`
