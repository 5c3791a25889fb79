// Package language maps between two-letter language codes and the
// three-letter tags that container subtitle metadata expects.
package language
