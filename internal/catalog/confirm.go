package catalog

// ConfirmPolicy decides whether a price markdown may be applied. The
// embedding application supplies the policy, so price mutation stays
// deterministic and testable.
type ConfirmPolicy interface {
	ConfirmMarkdown(name string, oldPrice, newPrice float64) bool
}

// ConfirmFunc adapts a plain function to a ConfirmPolicy.
type ConfirmFunc func(name string, oldPrice, newPrice float64) bool

// ConfirmMarkdown calls f.
func (f ConfirmFunc) ConfirmMarkdown(name string, oldPrice, newPrice float64) bool {
	return f(name, oldPrice, newPrice)
}

// ApproveAll applies every markdown without asking.
var ApproveAll ConfirmPolicy = ConfirmFunc(func(string, float64, float64) bool { return true })

// DenyAll declines every markdown.
var DenyAll ConfirmPolicy = ConfirmFunc(func(string, float64, float64) bool { return false })
