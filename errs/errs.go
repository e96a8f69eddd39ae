// Package errs defines the sentinel errors shared by the container, table and
// snapshot packages.
//
// Callers match them with errors.Is. Functions that return them usually wrap the
// sentinel with extra context (offset index, byte position, counts) using
// fmt.Errorf("%w: ...").
package errs

import "errors"

// Container errors.
var (
	// ErrContainerDecode wraps any failure to parse the SIR0 container that holds a table.
	ErrContainerDecode = errors.New("can't decode the SIR0 container")
	// ErrInvalidMagic is returned when a container or snapshot does not start with its magic bytes.
	ErrInvalidMagic = errors.New("invalid magic number")
	// ErrInvalidHeader is returned when header pointers are out of range or inconsistent.
	ErrInvalidHeader = errors.New("invalid header")
	// ErrOffsetOutOfRange is returned when a pointer offset points outside the data.
	ErrOffsetOutOfRange = errors.New("offset out of range")
	// ErrTruncatedOffsetList is returned when the SIR0 pointer offset list has no terminator.
	ErrTruncatedOffsetList = errors.New("truncated pointer offset list")
	// ErrDuplicatePointer is returned by the container builder when a pointer is written
	// to a position that was already registered.
	ErrDuplicatePointer = errors.New("pointer already registered")
	// ErrOddByteLength is returned when a byte string can't be split into 16-bit code units.
	ErrOddByteLength = errors.New("odd byte length for 16-bit code units")
)

// Table construction errors.
var (
	// ErrNotEnoughOffsets is returned when a container exposes fewer than 5 offsets.
	ErrNotEnoughOffsets = errors.New("not enough offsets in container")
	// ErrMissingOffset is returned when an expected offset can't be obtained.
	ErrMissingOffset = errors.New("missing offset")
	// ErrEntryRead is returned when a table entry record can't be read.
	ErrEntryRead = errors.New("can't read table entry")
	// ErrTruncatedRecord is returned when a record or label runs past the end of the data.
	ErrTruncatedRecord = errors.New("truncated record")
	// ErrInvalidLabel is returned when a label is not valid UTF-16.
	ErrInvalidLabel = errors.New("label is not valid UTF-16")
	// ErrLabelTooLong is returned when a label can't be stored in a snapshot.
	ErrLabelTooLong = errors.New("label too long")
)

// Table validation errors.
var (
	// ErrMisalignedBlock is reported for inline-offset entries whose value is not 256-aligned.
	ErrMisalignedBlock = errors.New("inline-offset entry is not block aligned")
	// ErrDuplicateValue is reported when two entries share a code value.
	ErrDuplicateValue = errors.New("duplicate code value")
	// ErrDuplicateLabel is reported when two entries share a label.
	ErrDuplicateLabel = errors.New("duplicate label")
	// ErrEmptyLabel is reported for entries with an empty label.
	ErrEmptyLabel = errors.New("empty label")
)

// Snapshot errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrChecksumMismatch   = errors.New("snapshot checksum mismatch")
	ErrInvalidPayload     = errors.New("invalid snapshot payload")
)
