package construct

import "context"

func (c *Constructor) variant(ctx context.Context, minStates, maxStates int, v Variant) (*Result, error) {
	return c.Construct(ctx, Request{MinStates: minStates, MaxStates: maxStates, Options: v})
}

// RandomDFA builds a faulty random automaton.
func (c *Constructor) RandomDFA(ctx context.Context, minStates, maxStates int, multiFaulty bool) (*Result, error) {
	return c.variant(ctx, minStates, maxStates, Variant{MultiFaulty: multiFaulty})
}

// RandomDFASaved is RandomDFA followed by a save.
func (c *Constructor) RandomDFASaved(ctx context.Context, minStates, maxStates int, multiFaulty bool) (*Result, error) {
	return c.variant(ctx, minStates, maxStates, Variant{MultiFaulty: multiFaulty, Save: true})
}

// RandomDFAExtraNormal composes the faulty automaton with a fault-free one.
func (c *Constructor) RandomDFAExtraNormal(ctx context.Context, minStates, maxStates int, multiFaulty bool) (*Result, error) {
	return c.variant(ctx, minStates, maxStates, Variant{MultiFaulty: multiFaulty, ExtraNormalComponent: true})
}

// RandomDFAExtraNormalSaved is RandomDFAExtraNormal followed by a save.
func (c *Constructor) RandomDFAExtraNormalSaved(ctx context.Context, minStates, maxStates int, multiFaulty bool) (*Result, error) {
	return c.variant(ctx, minStates, maxStates, Variant{MultiFaulty: multiFaulty, ExtraNormalComponent: true, Save: true})
}

// DiagnosableDFA builds a faulty random automaton the verifier accepts.
func (c *Constructor) DiagnosableDFA(ctx context.Context, minStates, maxStates int, multiFaulty bool) (*Result, error) {
	return c.variant(ctx, minStates, maxStates, Variant{MultiFaulty: multiFaulty, RequireDiagnosability: true})
}

// DiagnosableDFASaved is DiagnosableDFA followed by a save.
func (c *Constructor) DiagnosableDFASaved(ctx context.Context, minStates, maxStates int, multiFaulty bool) (*Result, error) {
	return c.variant(ctx, minStates, maxStates, Variant{MultiFaulty: multiFaulty, RequireDiagnosability: true, Save: true})
}

// DiagnosableDFAExtraNormal requires the composed automaton to be diagnosable.
func (c *Constructor) DiagnosableDFAExtraNormal(ctx context.Context, minStates, maxStates int, multiFaulty bool) (*Result, error) {
	return c.variant(ctx, minStates, maxStates, Variant{
		MultiFaulty: multiFaulty, ExtraNormalComponent: true, RequireDiagnosability: true,
	})
}

// DiagnosableDFAExtraNormalSaved is DiagnosableDFAExtraNormal followed by a save.
func (c *Constructor) DiagnosableDFAExtraNormalSaved(ctx context.Context, minStates, maxStates int, multiFaulty bool) (*Result, error) {
	return c.variant(ctx, minStates, maxStates, Variant{
		MultiFaulty: multiFaulty, ExtraNormalComponent: true, RequireDiagnosability: true, Save: true,
	})
}
