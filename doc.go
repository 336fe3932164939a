// Package strfmt renders text templates containing positional replacement
// fields, with a format specifier mini-language modelled on the one used by
// Python's str.format.
//
// The central entry points are [Render] and [Write], which accept a template
// and variadic arguments of any supported type:
//
//	s, err := strfmt.Render("{} + {} = {:>6.2f}", 1, 2, 3.0)
//	// "1 + 2 =   3.00"
//
// # Fields
//
// A field is written between braces. Literal braces are doubled: "{{" and
// "}}". A field has up to four parts, all optional:
//
//	{index.selector[selector]!conversion:specifier}
//
// The index picks an argument. Fields without one take the next argument in
// order; a field with an explicit index moves that counter to the argument
// after it, so "{} {}, {0} {}" renders arguments 0, 1, 0, 1.
//
// A field may name an environment variable instead of an index:
//
//	strfmt.Render("home={$HOME:>20}")
//
// Environment fields are resolved while the template is parsed and do not
// consume an argument. Unset variables render as empty text. Use
// [WithLookup] to supply another source.
//
// # Selectors
//
// Selectors follow the index, either as ".name" or "[name]":
//
//   - Integers support abs, sign, inc, dec and sqrt: "{0.abs.inc}"
//   - Maps look up a textual key: "{0[host]}" or "{0.host}". A missing key
//     renders the whole map.
//   - Sequences take a decimal index: "{0[2]}"
//
// Any other selector fails with a [CapabilityError].
//
// # Conversions
//
//   - !s, !r: render as text
//   - !i: render as an integer (floats truncate, text parses a prefix)
//   - !d: render as a floating point number
//
// # Format Specifier
//
// The text after ':' is a format specifier:
//
//	[[fill]align][sign][#][0][width][,][.precision][type]
//
// Alignment is one of '<', '>', '^' or '=' (pad after the sign). Sign is
// '+', '-' or ' '. '#' adds a 0b, 0o or 0x prefix. ',' groups digits. The
// presentation type is one of b d o x X n e E f F g G %. Use [ParseSpec] to
// inspect a specifier and [FormatValue] to apply one to a single value.
//
// Floating point values without a type or precision use the fewest digits
// that represent them, up to 16 significant digits:
//
//	strfmt.Render("{}", 0.1) // "0.1"
//	strfmt.Render("{}", 2.0) // "2.0"
//
// # Containers
//
// Slices, arrays and maps render each element with the field's specifier and
// join them with configurable delimiters. Map entries are sorted by key and
// rendered as pairs:
//
//	strfmt.Render("{:03}", []int{1, 2})               // "[001, 002]"
//	strfmt.Render("{}", map[string]int{"b": 2, "a": 1}) // "{a: 1, b: 2}"
//
// # Values
//
// [ValueOf] converts arguments into the closed [Value] set: [Int], [Float],
// [Bool], [Text], [Seq], [Map] and [Pair]. Implement [Valuer] to control how
// a type renders.
//
// # Errors
//
// Malformed templates produce a [*ParseError] carrying the byte position of
// the problem; [ParseError.Pointer] renders a caret diagnostic. In strict mode
// (the default) a field with no matching argument produces an
// [*UnboundFieldError]; [WithStrict] turns it into empty output. All typed
// errors match their sentinels with [errors.Is].
//
// # Configuration
//
// A [Formatter] created with [New] carries its options and is safe for
// concurrent use. [LoadConfig] builds options from a YAML or TOML file:
//
//	opts, err := strfmt.LoadConfig("strfmt.yaml")
//	f := strfmt.New(opts...)
package strfmt
