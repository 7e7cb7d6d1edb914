//go:build smarterr

package broken

//smarterr:unknown
func A() {}

//smarterr:errors AError
var x = 1

func B() {
	//smarterr:errors BError
}

//smarterr:mod errs
type Holder struct{}

//smarterr:errors
//	HolderError{h: Holder},
func (h Holder) C() {}

//smarterr:errors DError{
func D() {}

//smarterr:errors EError

func E() {}
