// File: methods_state.go
// Role: Per-vertex solver state (potential + tag) stored alongside the arena.

package mesh

// State returns the current state of v.
func (m *Mesh) State(v VertexID) VertexState { return m.states[v] }

// SetState overwrites the state of v. Only the solver that owns the mesh
// should call this.
func (m *Mesh) SetState(v VertexID, s VertexState) { m.states[v] = s }

// Potential returns the current potential of v (+Inf when unset).
func (m *Mesh) Potential(v VertexID) float64 { return m.states[v].Potential }

// Tag returns the marching tag of v.
func (m *Mesh) Tag(v VertexID) Tag { return m.states[v].Tag }

// ResetStates puts every vertex back to Far with Potential = +Inf.
// Required before re-solving the same mesh for another target configuration.
func (m *Mesh) ResetStates() {
	for i := range m.states {
		m.states[i] = farState()
	}
}

// Potentials returns a copy of all vertex potentials indexed by VertexID.
func (m *Mesh) Potentials() []float64 {
	out := make([]float64, len(m.states))
	for i, s := range m.states {
		out[i] = s.Potential
	}

	return out
}
