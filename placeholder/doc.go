// Package placeholder converts between the 16-bit code units stored in game
// strings and an annotated text form.
//
// # Text form
//
//   - literal characters are written as-is, except [ and \
//   - \[ is a literal [ and \\ is a literal \; no other escape exists
//   - [name] is a placeholder without argument
//   - [name:value] is a placeholder with an unsigned base-10 argument, or a
//     hardcoded placeholder whose label is "name:value"
//
// Labels of placeholders that take an argument conventionally end with ':'
// ("color:"), so decoding code unit 0x8105 with an inline-offset entry
// "color:" at 0x8100 yields "[color:5]". The encoder splits a placeholder on
// ':' and keeps the ':' with the directive, so "[color:5]" looks up "color:5"
// first, then "color:", then "color".
//
// # Argument forms
//
// The table entry kind decides how the argument is stored:
//
//   - NoArgument: the code unit alone; a given argument is added like an inline offset
//   - InlineOffset: entry value plus the argument (0-255) in the low byte
//   - MultiWord: the entry value followed by WordCount code units holding the
//     argument, low word first
//
// Decoder and Encoder are stateless after construction and safe for concurrent use.
package placeholder
