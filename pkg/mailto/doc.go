// Package mailto builds and parses mailto: links used to hand a message over
// to the visitor's own mail client.
package mailto
