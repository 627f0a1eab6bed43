// Package units parses free-form quantities such as "10 feet" or "50 km/h" and
// normalizes them to SI base units.
//
// Recognized units live in an immutable Table keyed by quantity Kind. The
// default table is built once per process and is safe for concurrent use.
//
// Parsing rules:
//   - The magnitude is a plain decimal literal: optional sign, digits, optional
//     decimal point and optional exponent ("-3.5", "1e6", "2.5E-3"). Hexadecimal
//     literals, "inf", "nan" and digit separators are rejected.
//   - Magnitude and unit are separated by the first run of whitespace. A unit is
//     always required; there is no implicit SI default.
//   - Unit tokens are case-folded and stripped of every whitespace rune before
//     lookup, so "KM / H" and "km/h" resolve to the same unit while "kmh" is a
//     distinct alias.
//   - Overflowing magnitudes ("1e400") are rejected as non-finite, and so are
//     finite magnitudes whose SI value overflows ("1e308 mile").
package units
