package interp

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/loxgo/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses and evaluates src against a fresh Evaluator, returning the
// captured println output and any runtime error.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	decls, err := parser.ParseSource(src)
	require.NoError(t, err, "source must parse cleanly")

	var buf bytes.Buffer
	ev := New()
	ev.SetWriter(&buf)
	runErr := ev.Run(decls)
	return buf.String(), runErr
}

func TestEvaluator_Arithmetic(t *testing.T) {
	out, err := run(t, `println(1 + 2 * 3);`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestEvaluator_StringConcat(t *testing.T) {
	out, err := run(t, `let a = "hi"; let b = " there"; println(a + b);`)
	require.NoError(t, err)
	assert.Equal(t, "hi there\n", out)
}

func TestEvaluator_ClosureCapturesDefiningEnvironment(t *testing.T) {
	out, err := run(t, `
		fn mk(x) { fn inner() { return x; } return inner; }
		let f = mk(42);
		println(f());
	`)
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestEvaluator_ClosureSeesLaterMutationThroughSharedEnv(t *testing.T) {
	out, err := run(t, `
		fn counter() {
			let n = 0;
			fn increment() { n = n + 1; return n; }
			return increment;
		}
		let c = counter();
		println(c());
		println(c());
		println(c());
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestEvaluator_RedefiningNameInDefiningScopeIsSeenByClosure(t *testing.T) {
	out, err := run(t, `
		let x = 1;
		fn show() { return x; }
		let x = 2;
		println(show());
	`)
	require.NoError(t, err)
	// "let x = 2;" at top level shadows by redefining the same binding, so
	// the closure (which captured the global environment itself, not a
	// snapshot) observes the new value: lexical scope is about *which*
	// environment is captured, not a copy frozen at definition time.
	assert.Equal(t, "2\n", out)
}

func TestEvaluator_WhileLoop(t *testing.T) {
	out, err := run(t, `let i = 0; while i < 3 { println(i); i = i + 1; }`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestEvaluator_ForDesugarsAndDoesNotLeakLoopVariable(t *testing.T) {
	out, err := run(t, `for i in 0..3 { println(i); }`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)

	_, err = run(t, `for i in 0..3 {} println(i);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'i'")
}

func TestEvaluator_DivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `println(1 / 0);`)
	require.Error(t, err)
	assert.Equal(t, "RuntimeError [line 1]: Division by zero is not allowed.", err.Error())
}

func TestEvaluator_AssignmentWithoutPriorLetIsRuntimeError(t *testing.T) {
	_, err := run(t, `x = 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tried to assign to non-existent binding 'x'")
}

func TestEvaluator_BlockScopingDoesNotLeak(t *testing.T) {
	_, err := run(t, `{ let y = 1; } println(y);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'y'")
}

func TestEvaluator_ShortCircuitOr(t *testing.T) {
	out, err := run(t, `
		fn sideEffect() { println("called"); return true; }
		let r = true or sideEffect();
		println(r);
	`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestEvaluator_ShortCircuitAnd(t *testing.T) {
	out, err := run(t, `
		fn sideEffect() { println("called"); return true; }
		let r = false and sideEffect();
		println(r);
	`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestEvaluator_ReturnOutsideFunctionIsRuntimeError(t *testing.T) {
	_, err := run(t, `return 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "return outside function")
}

func TestEvaluator_NonCallableValueCannotBeCalled(t *testing.T) {
	_, err := run(t, `let x = 1; x();`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected callable object")
}

func TestEvaluator_ArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `fn add(a, b) { return a + b; } add(1);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 argument(s), but 1 were found")
}

func TestInterpret_ExitCodes(t *testing.T) {
	var out, errOut bytes.Buffer

	code := Interpret(`println(1 + 2 * 3);`, &out, &errOut)
	assert.Equal(t, 0, code)
	assert.Equal(t, "7\n", out.String())

	out.Reset()
	errOut.Reset()
	code = Interpret(`println(1 / 0);`, &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "RuntimeError [line 1]: Division by zero is not allowed.")

	out.Reset()
	errOut.Reset()
	code = Interpret(`let x = 1 let y = 2;`, &out, &errOut)
	assert.Equal(t, 65, code)
}
