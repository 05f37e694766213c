/*
Package console implements the interactive calculator dialogue.

A Session prompts for a first number, an operator and a second number,
evaluates them in its configured representation and writes the outcome.
Calculation failures are rendered as "Error: <message>" and never end the
session with an error; only I/O failures do.

Output Formats:
  - text: prompts plus "Result: <value>" or "Error: <message>"
  - json: one sonic-encoded Outcome per evaluation, no prompts
  - yaml: one goccy/go-yaml document per evaluation
  - toml: one go-toml table per evaluation

Operands are never echoed back, logged or included in an Outcome.

Example:

	s, err := console.NewSession(os.Stdin, os.Stdout, console.Options{
		Representation: calculator.Int32,
	})
	if err != nil {
		return err
	}
	return s.Run()
*/
package console
