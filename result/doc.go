// Package result defines the Statistics and Solution types shared by the
// sequential and parallel engines and re-exported by package solve. It has
// no dependency on either engine, which keeps both free to import it
// without an import cycle back through the solve facade.
package result
