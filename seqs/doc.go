/*
Package seqs formats finite collections and builds the sequences that feed them.

A [Collection] is anything that knows its length and can iterate its elements
in order. [Slice] and [FromSeq] adapt slices and iterators.

  - **Formatting**: [PrintCollection] writes "[e1, e2, ..., en]" to a [Sink];
    [Format], [FormatSeq] and [Fprint] are the string and io.Writer forms.
  - **Generation**: [Random] draws values from a [randx.Generator];
    [Range] and [Repeat] are deterministic.

# Sinks

A [Sink] wraps an io.Writer and keeps the first write error. Every method
returns the sink, so output can be chained and checked once:

	s := seqs.NewSink(w)
	seqs.PrintCollection(s.Text("ids="), ids).Text("\n")
	if err := s.Err(); err != nil {
		return err
	}
*/
package seqs
