// Package report resolves every declaration of a set of source files and
// collects the results, along with the class relationships a diagram
// would draw from them.
package report
