// Package enums provides type-safe enumeration types for the employee directory.
//
// The enum types are defined as unexported integer types in this file and the go:generate
// directives invoke go-pkgz/enum to create the exported types with string conversion,
// parsing, text marshaling and database scanning in separate *_enum.go files.
//
// Usage:
//
//	loc, err := enums.ParseLocation("Madurai")
//	if err != nil {
//	    // not one of the known towns
//	}
//	fmt.Println(loc.String()) // "Madurai"
//
// To regenerate the enum types after modifications:
//
//	go generate ./app/enums
package enums

//go:generate go run github.com/go-pkgz/enum@latest -type location
//go:generate go run github.com/go-pkgz/enum@latest -type gender
//go:generate go run github.com/go-pkgz/enum@latest -type formMode -lower
//go:generate go run github.com/go-pkgz/enum@latest -type changeKind -lower

// location is a town an employee is based in.
// Use the exported Location type and its constants in actual code.
type location int

const (
	locationMadurai location = iota
	locationSivakasi
	locationVirudhunagar
	locationSattur
)

// gender of an employee.
// Use the exported Gender type and its constants in actual code.
type gender int

const (
	genderMale gender = iota
	genderFemale
)

// formMode is the active operation of an edit session.
// Use the exported FormMode type and its constants in actual code.
type formMode int

const (
	formModeNone formMode = iota
	formModeAdd
	formModeEdit
)

// changeKind is the kind of mutation applied to the employee collection.
// Use the exported ChangeKind type and its constants in actual code.
type changeKind int

const (
	changeKindAdded changeKind = iota
	changeKindUpdated
	changeKindRemoved
	changeKindSeeded
)
