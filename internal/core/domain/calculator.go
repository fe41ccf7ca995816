package domain

import "fmt"

// Calculator performs basic arithmetic under a display name.
// It is the value type underlying the calculator service; recording
// and logging of calls happen in the service layer.
type Calculator struct {
	// Name identifies this calculator in logs and output.
	Name string
}

// NewCalculator creates a calculator with the given name.
func NewCalculator(name string) Calculator {
	return Calculator{Name: name}
}

// Add returns the sum of a and b.
func (c Calculator) Add(a, b float64) float64 {
	return a + b
}

// String returns the display form, e.g. "Calculator: main".
func (c Calculator) String() string {
	return fmt.Sprintf("Calculator: %s", c.Name)
}

// AdvancedCalculator extends Calculator with multiplication and an
// ordered history of formatted call entries.
type AdvancedCalculator struct {
	Calculator

	// History holds one entry per multiplication, in call order.
	// Entries are formatted "a * b = result".
	History []string
}

// NewAdvancedCalculator creates an advanced calculator with the given name
// and an empty history.
func NewAdvancedCalculator(name string) *AdvancedCalculator {
	return &AdvancedCalculator{Calculator: NewCalculator(name)}
}

// Multiply returns the product of a and b and appends the call to History.
func (c *AdvancedCalculator) Multiply(a, b float64) float64 {
	result := a * b
	c.History = append(c.History, fmt.Sprintf("%s * %s = %s",
		formatNumber(a), formatNumber(b), formatNumber(result)))
	return result
}

// Double returns x doubled. Standalone helper with no calculator state.
func Double(x float64) float64 {
	return x * 2
}

// About returns a one-line description of the workbench.
func About() string {
	return "tally, an operation-logging calculator workbench"
}

// formatNumber renders a float without a trailing ".0" for whole values,
// matching the history entry format.
func formatNumber(f float64) string {
	return fmt.Sprintf("%g", f)
}
