package rnd

import "github.com/zeebo/errs"

// Error is the class of all precondition failures raised by this package.
var Error = errs.Class("rnd")
