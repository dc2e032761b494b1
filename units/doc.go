// Package units provides typed physical quantities.
//
// A Quantity is parameterized by its Kind, so a Length can never be added to a Force.
// Every quantity stores its value in the base unit of its kind (meter for length,
// newton for force) and converts to other units on demand using As.
package units
