package oracle

import (
	"context"
	"fmt"
	"testing"

	"google.golang.org/grpc"
	"gonum.org/v1/gonum/mat"

	pb "github.com/mhalvorsen/multiseed/go-solver/gen/enginepb"
)

// mockEngineService implements pb.EngineServiceClient backed by a TwoLevel
// model, so the Remote adapter can be exercised without a live connection.
type mockEngineService struct {
	pb.EngineServiceClient

	engine   *TwoLevel
	failFock bool
	lastStep *pb.NewtonStepRequest
}

func (m *mockEngineService) GetOverlap(_ context.Context, _ *pb.GetOverlapRequest, _ ...grpc.CallOption) (*pb.MatrixResponse, error) {
	return &pb.MatrixResponse{Matrix: denseToProto(m.engine.Overlap())}, nil
}

func (m *mockEngineService) GetCoreHamiltonian(_ context.Context, _ *pb.GetCoreHamiltonianRequest, _ ...grpc.CallOption) (*pb.MatrixResponse, error) {
	return &pb.MatrixResponse{Matrix: denseToProto(m.engine.CoreHamiltonian())}, nil
}

func (m *mockEngineService) BuildFock(ctx context.Context, req *pb.BuildFockRequest, _ ...grpc.CallOption) (*pb.MatrixResponse, error) {
	if m.failFock {
		return nil, fmt.Errorf("engine unavailable")
	}
	d, err := fromProto(req.Density)
	if err != nil {
		return nil, err
	}
	f, err := m.engine.BuildFock(ctx, d)
	if err != nil {
		return nil, err
	}
	return &pb.MatrixResponse{Matrix: denseToProto(f)}, nil
}

func (m *mockEngineService) OneNewtonStep(ctx context.Context, req *pb.NewtonStepRequest, _ ...grpc.CallOption) (*pb.NewtonStepResponse, error) {
	m.lastStep = req
	c, err := fromProto(req.Coeffs)
	if err != nil {
		return nil, err
	}
	out, conv, err := m.engine.OneNewtonStep(ctx, c, req.Occupation)
	if err != nil {
		return nil, err
	}
	return &pb.NewtonStepResponse{Coeffs: denseToProto(out), Converged: conv}, nil
}

func (m *mockEngineService) EnergyElectronic(ctx context.Context, req *pb.EnergyRequest, _ ...grpc.CallOption) (*pb.EnergyResponse, error) {
	d, err := fromProto(req.Density)
	if err != nil {
		return nil, err
	}
	v, err := m.engine.EnergyElectronic(ctx, d)
	if err != nil {
		return nil, err
	}
	return &pb.EnergyResponse{Value: v}, nil
}

func (m *mockEngineService) EnergyTotal(ctx context.Context, req *pb.EnergyRequest, _ ...grpc.CallOption) (*pb.EnergyResponse, error) {
	d, err := fromProto(req.Density)
	if err != nil {
		return nil, err
	}
	v, err := m.engine.EnergyTotal(ctx, d)
	if err != nil {
		return nil, err
	}
	return &pb.EnergyResponse{Value: v}, nil
}

func (m *mockEngineService) Occupation(ctx context.Context, req *pb.OccupationRequest, _ ...grpc.CallOption) (*pb.OccupationResponse, error) {
	occ, err := m.engine.Occupation(ctx, req.OrbitalEnergies, nil)
	if err != nil {
		return nil, err
	}
	return &pb.OccupationResponse{Occupation: occ}, nil
}

func (m *mockEngineService) SecularSolve(ctx context.Context, req *pb.SecularSolveRequest, _ ...grpc.CallOption) (*pb.SecularSolveResponse, error) {
	f, err := fromProto(req.Fock)
	if err != nil {
		return nil, err
	}
	s, err := fromProto(req.Overlap)
	if err != nil {
		return nil, err
	}
	energies, c, err := m.engine.SecularSolve(ctx, f, s)
	if err != nil {
		return nil, err
	}
	return &pb.SecularSolveResponse{OrbitalEnergies: energies, Coeffs: denseToProto(c)}, nil
}

func denseToProto(m *mat.Dense) *pb.Matrix { return toProto(m) }

func newMockRemote(t *testing.T) (*Remote, *mockEngineService) {
	t.Helper()
	svc := &mockEngineService{engine: DefaultTwoLevel()}
	r, err := NewRemoteWithService(context.Background(), svc, 0.2)
	if err != nil {
		t.Fatalf("NewRemoteWithService: %v", err)
	}
	return r, svc
}

func TestRemoteCachesInvariants(t *testing.T) {
	r, _ := newMockRemote(t)

	s := r.Overlap()
	if rows, cols := s.Dims(); rows != 2 || cols != 2 {
		t.Fatalf("overlap dims %dx%d", rows, cols)
	}
	if s.At(0, 0) != 1 || s.At(0, 1) != 0 {
		t.Fatalf("unexpected overlap: %v", mat.Formatted(s))
	}
	if h := r.CoreHamiltonian(); h.At(0, 0) != -1.0 {
		t.Fatalf("unexpected hcore: %v", mat.Formatted(h))
	}
}

func TestRemoteNewtonStepForwardsCap(t *testing.T) {
	r, svc := newMockRemote(t)

	base := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	out, conv, err := r.OneNewtonStep(context.Background(), base, []float64{2, 0})
	if err != nil {
		t.Fatalf("OneNewtonStep: %v", err)
	}
	if !conv {
		t.Fatal("model engine should report local convergence")
	}
	if out == nil {
		t.Fatal("nil coefficients")
	}
	if svc.lastStep.MaxStepSize != 0.2 {
		t.Fatalf("step cap not forwarded: %v", svc.lastStep.MaxStepSize)
	}
}

func TestRemoteMatchesInProcessEngine(t *testing.T) {
	r, svc := newMockRemote(t)
	ctx := context.Background()

	c := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	occ := []float64{2, 0}
	d := r.Density(c, occ)

	remoteE, err := r.EnergyElectronic(ctx, d)
	if err != nil {
		t.Fatalf("EnergyElectronic: %v", err)
	}
	localE, _ := svc.engine.EnergyElectronic(ctx, d)
	if remoteE != localE {
		t.Fatalf("remote energy %v != local %v", remoteE, localE)
	}
}

func TestRemoteSurfacesRPCErrors(t *testing.T) {
	r, svc := newMockRemote(t)
	svc.failFock = true

	d := mat.NewDense(2, 2, []float64{1, 0, 0, 0})
	if _, err := r.BuildFock(context.Background(), d); err == nil {
		t.Fatal("expected wrapped rpc error")
	}
}

func TestFromProtoRejectsMalformedPayload(t *testing.T) {
	cases := []*pb.Matrix{
		nil,
		{Rows: 2, Cols: 2, Data: []float64{1, 2, 3}},
		{Rows: 0, Cols: 2, Data: nil},
	}
	for i, m := range cases {
		if _, err := fromProto(m); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}
