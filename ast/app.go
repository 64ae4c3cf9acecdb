package ast

// App is an application: an operation denoted by one expression performed
// on another. Application is the only expression form that binds nothing,
// so it is built directly rather than through a fallible constructor.
type App struct {
	// Expression denoting the operation to perform.
	Fn Exp
	// Expression the operation is performed on.
	Arg Exp
}

// Create a new application of fn to arg.
func NewApp(fn, arg Exp) App {
	return App{Fn: fn, Arg: arg}
}

func (App) isExp() {}
