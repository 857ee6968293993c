package oracle

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"gonum.org/v1/gonum/mat"

	pb "github.com/mhalvorsen/multiseed/go-solver/gen/enginepb"
	"github.com/mhalvorsen/multiseed/go-solver/internal/linalg"
)

// #region remote-struct

// Remote adapts the gRPC chemistry engine sidecar to the Oracle interface.
// The overlap and core Hamiltonian are fetched once at construction since
// they are invariant for the run; density construction is evaluated locally.
// The underlying gRPC client is safe for concurrent use, so a single Remote
// may be shared read-only across agents.
type Remote struct {
	conn        *grpc.ClientConn
	client      pb.EngineServiceClient
	overlap     *mat.Dense
	hcore       *mat.Dense
	maxStepSize float64
}

// #endregion remote-struct

// #region constructor

// NewRemote connects to the engine sidecar and caches the run-invariant
// matrices. maxStepSize caps the Newton step and is forwarded on every step
// request.
func NewRemote(ctx context.Context, addr string, maxStepSize float64) (*Remote, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	r := &Remote{
		conn:        conn,
		client:      pb.NewEngineServiceClient(conn),
		maxStepSize: maxStepSize,
	}
	if err := r.fetchInvariants(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return r, nil
}

// NewRemoteWithService creates a Remote with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewRemoteWithService(ctx context.Context, svc pb.EngineServiceClient, maxStepSize float64) (*Remote, error) {
	r := &Remote{client: svc, maxStepSize: maxStepSize}
	if err := r.fetchInvariants(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Remote) fetchInvariants(ctx context.Context) error {
	ov, err := r.client.GetOverlap(ctx, &pb.GetOverlapRequest{})
	if err != nil {
		return fmt.Errorf("get overlap rpc: %w", err)
	}
	r.overlap, err = fromProto(ov.Matrix)
	if err != nil {
		return fmt.Errorf("get overlap: %w", err)
	}
	hc, err := r.client.GetCoreHamiltonian(ctx, &pb.GetCoreHamiltonianRequest{})
	if err != nil {
		return fmt.Errorf("get core hamiltonian rpc: %w", err)
	}
	r.hcore, err = fromProto(hc.Matrix)
	if err != nil {
		return fmt.Errorf("get core hamiltonian: %w", err)
	}
	return nil
}

// Close shuts down the gRPC connection.
func (r *Remote) Close() error {
	if r.conn == nil {
		return nil
	}
	return r.conn.Close()
}

// #endregion constructor

// #region invariants

// Overlap returns the cached overlap matrix.
func (r *Remote) Overlap() *mat.Dense { return linalg.Clone(r.overlap) }

// CoreHamiltonian returns the cached core Hamiltonian.
func (r *Remote) CoreHamiltonian() *mat.Dense { return linalg.Clone(r.hcore) }

// #endregion invariants

// #region rpcs

// BuildFock assembles the Fock matrix on the engine side.
func (r *Remote) BuildFock(ctx context.Context, density *mat.Dense) (*mat.Dense, error) {
	resp, err := r.client.BuildFock(ctx, &pb.BuildFockRequest{Density: toProto(density)})
	if err != nil {
		return nil, fmt.Errorf("build fock rpc: %w", err)
	}
	f, err := fromProto(resp.Matrix)
	if err != nil {
		return nil, fmt.Errorf("build fock: %w", err)
	}
	return f, nil
}

// OneNewtonStep requests a single capped Newton-Raphson step.
func (r *Remote) OneNewtonStep(ctx context.Context, coeffs *mat.Dense, occ []float64) (*mat.Dense, bool, error) {
	resp, err := r.client.OneNewtonStep(ctx, &pb.NewtonStepRequest{
		Coeffs:      toProto(coeffs),
		Occupation:  occ,
		MaxStepSize: r.maxStepSize,
	})
	if err != nil {
		return nil, false, fmt.Errorf("newton step rpc: %w", err)
	}
	c, err := fromProto(resp.Coeffs)
	if err != nil {
		return nil, false, fmt.Errorf("newton step: %w", err)
	}
	return c, resp.Converged, nil
}

// Density builds D = C · diag(occ) · Cᵀ locally; the construction is engine
// independent.
func (r *Remote) Density(coeffs *mat.Dense, occ []float64) *mat.Dense {
	return linalg.DensityMatrix(coeffs, occ)
}

// EnergyElectronic evaluates the electronic energy on the engine side.
func (r *Remote) EnergyElectronic(ctx context.Context, density *mat.Dense) (float64, error) {
	resp, err := r.client.EnergyElectronic(ctx, &pb.EnergyRequest{Density: toProto(density)})
	if err != nil {
		return 0, fmt.Errorf("energy electronic rpc: %w", err)
	}
	return resp.Value, nil
}

// EnergyTotal evaluates the total energy on the engine side.
func (r *Remote) EnergyTotal(ctx context.Context, density *mat.Dense) (float64, error) {
	resp, err := r.client.EnergyTotal(ctx, &pb.EnergyRequest{Density: toProto(density)})
	if err != nil {
		return 0, fmt.Errorf("energy total rpc: %w", err)
	}
	return resp.Value, nil
}

// Occupation asks the engine to assign occupation numbers.
func (r *Remote) Occupation(ctx context.Context, orbEnergies []float64, coeffs *mat.Dense) ([]float64, error) {
	resp, err := r.client.Occupation(ctx, &pb.OccupationRequest{
		OrbitalEnergies: orbEnergies,
		Coeffs:          toProto(coeffs),
	})
	if err != nil {
		return nil, fmt.Errorf("occupation rpc: %w", err)
	}
	return resp.Occupation, nil
}

// SecularSolve solves the generalized eigenproblem on the engine side.
func (r *Remote) SecularSolve(ctx context.Context, fock, overlap *mat.Dense) ([]float64, *mat.Dense, error) {
	resp, err := r.client.SecularSolve(ctx, &pb.SecularSolveRequest{
		Fock:    toProto(fock),
		Overlap: toProto(overlap),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("secular solve rpc: %w", err)
	}
	c, err := fromProto(resp.Coeffs)
	if err != nil {
		return nil, nil, fmt.Errorf("secular solve: %w", err)
	}
	return resp.OrbitalEnergies, c, nil
}

// #endregion rpcs

// #region matrix-codec

func toProto(m *mat.Dense) *pb.Matrix {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		data = append(data, m.RawRowView(i)...)
	}
	return &pb.Matrix{Rows: int32(r), Cols: int32(c), Data: data}
}

func fromProto(m *pb.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("missing matrix payload")
	}
	r, c := int(m.Rows), int(m.Cols)
	if r <= 0 || c <= 0 || len(m.Data) != r*c {
		return nil, fmt.Errorf("malformed matrix payload: %dx%d with %d values", r, c, len(m.Data))
	}
	data := make([]float64, len(m.Data))
	copy(data, m.Data)
	return mat.NewDense(r, c, data), nil
}

// #endregion matrix-codec
