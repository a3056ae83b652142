// Package message defines Message, the partial-factor payload sent along
// one edge of a factor graph in one direction.
//
// A Message carries an ordered list of free variable names (ArgSpec) and a
// list of Term multiplicands (Factors). Its semantic value at a concrete
// assignment of ArgSpec is the marginalization-engine sum of the product of
// its multiplicands over every variable the multiplicands declare beyond
// ArgSpec — see package marginalize for the kernel. When no multiplicand
// declares a variable outside ArgSpec, this degenerates to a plain product,
// as it does for messages sent by leaves and by variables whose other
// neighbors are leaf priors.
//
// Identity returns the empty message (ArgSpec = nil, Factors = [Const(1)]),
// the message a leaf variable node sends.
package message
