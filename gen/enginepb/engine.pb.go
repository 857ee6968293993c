// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: engine.proto

package enginepb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Matrix struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rows          int32                  `protobuf:"varint,1,opt,name=rows,proto3" json:"rows,omitempty"`
	Cols          int32                  `protobuf:"varint,2,opt,name=cols,proto3" json:"cols,omitempty"`
	Data          []float64              `protobuf:"fixed64,3,rep,packed,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Matrix) Reset() {
	*x = Matrix{}
	mi := &file_engine_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Matrix) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Matrix) ProtoMessage() {}

func (x *Matrix) ProtoReflect() protoreflect.Message {
	mi := &file_engine_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Matrix.ProtoReflect.Descriptor instead.
func (*Matrix) Descriptor() ([]byte, []int) {
	return file_engine_proto_rawDescGZIP(), []int{0}
}

func (x *Matrix) GetRows() int32 {
	if x != nil {
		return x.Rows
	}
	return 0
}

func (x *Matrix) GetCols() int32 {
	if x != nil {
		return x.Cols
	}
	return 0
}

func (x *Matrix) GetData() []float64 {
	if x != nil {
		return x.Data
	}
	return nil
}

type GetOverlapRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOverlapRequest) Reset() {
	*x = GetOverlapRequest{}
	mi := &file_engine_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOverlapRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOverlapRequest) ProtoMessage() {}

func (x *GetOverlapRequest) ProtoReflect() protoreflect.Message {
	mi := &file_engine_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOverlapRequest.ProtoReflect.Descriptor instead.
func (*GetOverlapRequest) Descriptor() ([]byte, []int) {
	return file_engine_proto_rawDescGZIP(), []int{1}
}

type GetCoreHamiltonianRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCoreHamiltonianRequest) Reset() {
	*x = GetCoreHamiltonianRequest{}
	mi := &file_engine_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCoreHamiltonianRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCoreHamiltonianRequest) ProtoMessage() {}

func (x *GetCoreHamiltonianRequest) ProtoReflect() protoreflect.Message {
	mi := &file_engine_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCoreHamiltonianRequest.ProtoReflect.Descriptor instead.
func (*GetCoreHamiltonianRequest) Descriptor() ([]byte, []int) {
	return file_engine_proto_rawDescGZIP(), []int{2}
}

type MatrixResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Matrix        *Matrix                `protobuf:"bytes,1,opt,name=matrix,proto3" json:"matrix,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MatrixResponse) Reset() {
	*x = MatrixResponse{}
	mi := &file_engine_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatrixResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatrixResponse) ProtoMessage() {}

func (x *MatrixResponse) ProtoReflect() protoreflect.Message {
	mi := &file_engine_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatrixResponse.ProtoReflect.Descriptor instead.
func (*MatrixResponse) Descriptor() ([]byte, []int) {
	return file_engine_proto_rawDescGZIP(), []int{3}
}

func (x *MatrixResponse) GetMatrix() *Matrix {
	if x != nil {
		return x.Matrix
	}
	return nil
}

type BuildFockRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Density       *Matrix                `protobuf:"bytes,1,opt,name=density,proto3" json:"density,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BuildFockRequest) Reset() {
	*x = BuildFockRequest{}
	mi := &file_engine_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BuildFockRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BuildFockRequest) ProtoMessage() {}

func (x *BuildFockRequest) ProtoReflect() protoreflect.Message {
	mi := &file_engine_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BuildFockRequest.ProtoReflect.Descriptor instead.
func (*BuildFockRequest) Descriptor() ([]byte, []int) {
	return file_engine_proto_rawDescGZIP(), []int{4}
}

func (x *BuildFockRequest) GetDensity() *Matrix {
	if x != nil {
		return x.Density
	}
	return nil
}

type NewtonStepRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Coeffs        *Matrix                `protobuf:"bytes,1,opt,name=coeffs,proto3" json:"coeffs,omitempty"`
	Occupation    []float64              `protobuf:"fixed64,2,rep,packed,name=occupation,proto3" json:"occupation,omitempty"`
	MaxStepSize   float64                `protobuf:"fixed64,3,opt,name=max_step_size,json=maxStepSize,proto3" json:"max_step_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NewtonStepRequest) Reset() {
	*x = NewtonStepRequest{}
	mi := &file_engine_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NewtonStepRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NewtonStepRequest) ProtoMessage() {}

func (x *NewtonStepRequest) ProtoReflect() protoreflect.Message {
	mi := &file_engine_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NewtonStepRequest.ProtoReflect.Descriptor instead.
func (*NewtonStepRequest) Descriptor() ([]byte, []int) {
	return file_engine_proto_rawDescGZIP(), []int{5}
}

func (x *NewtonStepRequest) GetCoeffs() *Matrix {
	if x != nil {
		return x.Coeffs
	}
	return nil
}

func (x *NewtonStepRequest) GetOccupation() []float64 {
	if x != nil {
		return x.Occupation
	}
	return nil
}

func (x *NewtonStepRequest) GetMaxStepSize() float64 {
	if x != nil {
		return x.MaxStepSize
	}
	return 0
}

type NewtonStepResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Coeffs        *Matrix                `protobuf:"bytes,1,opt,name=coeffs,proto3" json:"coeffs,omitempty"`
	Converged     bool                   `protobuf:"varint,2,opt,name=converged,proto3" json:"converged,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NewtonStepResponse) Reset() {
	*x = NewtonStepResponse{}
	mi := &file_engine_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NewtonStepResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NewtonStepResponse) ProtoMessage() {}

func (x *NewtonStepResponse) ProtoReflect() protoreflect.Message {
	mi := &file_engine_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NewtonStepResponse.ProtoReflect.Descriptor instead.
func (*NewtonStepResponse) Descriptor() ([]byte, []int) {
	return file_engine_proto_rawDescGZIP(), []int{6}
}

func (x *NewtonStepResponse) GetCoeffs() *Matrix {
	if x != nil {
		return x.Coeffs
	}
	return nil
}

func (x *NewtonStepResponse) GetConverged() bool {
	if x != nil {
		return x.Converged
	}
	return false
}

type EnergyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Density       *Matrix                `protobuf:"bytes,1,opt,name=density,proto3" json:"density,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnergyRequest) Reset() {
	*x = EnergyRequest{}
	mi := &file_engine_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnergyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnergyRequest) ProtoMessage() {}

func (x *EnergyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_engine_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnergyRequest.ProtoReflect.Descriptor instead.
func (*EnergyRequest) Descriptor() ([]byte, []int) {
	return file_engine_proto_rawDescGZIP(), []int{7}
}

func (x *EnergyRequest) GetDensity() *Matrix {
	if x != nil {
		return x.Density
	}
	return nil
}

type EnergyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         float64                `protobuf:"fixed64,1,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnergyResponse) Reset() {
	*x = EnergyResponse{}
	mi := &file_engine_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnergyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnergyResponse) ProtoMessage() {}

func (x *EnergyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_engine_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnergyResponse.ProtoReflect.Descriptor instead.
func (*EnergyResponse) Descriptor() ([]byte, []int) {
	return file_engine_proto_rawDescGZIP(), []int{8}
}

func (x *EnergyResponse) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

type OccupationRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	OrbitalEnergies []float64              `protobuf:"fixed64,1,rep,packed,name=orbital_energies,json=orbitalEnergies,proto3" json:"orbital_energies,omitempty"`
	Coeffs          *Matrix                `protobuf:"bytes,2,opt,name=coeffs,proto3" json:"coeffs,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *OccupationRequest) Reset() {
	*x = OccupationRequest{}
	mi := &file_engine_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OccupationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OccupationRequest) ProtoMessage() {}

func (x *OccupationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_engine_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OccupationRequest.ProtoReflect.Descriptor instead.
func (*OccupationRequest) Descriptor() ([]byte, []int) {
	return file_engine_proto_rawDescGZIP(), []int{9}
}

func (x *OccupationRequest) GetOrbitalEnergies() []float64 {
	if x != nil {
		return x.OrbitalEnergies
	}
	return nil
}

func (x *OccupationRequest) GetCoeffs() *Matrix {
	if x != nil {
		return x.Coeffs
	}
	return nil
}

type OccupationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Occupation    []float64              `protobuf:"fixed64,1,rep,packed,name=occupation,proto3" json:"occupation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OccupationResponse) Reset() {
	*x = OccupationResponse{}
	mi := &file_engine_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OccupationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OccupationResponse) ProtoMessage() {}

func (x *OccupationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_engine_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OccupationResponse.ProtoReflect.Descriptor instead.
func (*OccupationResponse) Descriptor() ([]byte, []int) {
	return file_engine_proto_rawDescGZIP(), []int{10}
}

func (x *OccupationResponse) GetOccupation() []float64 {
	if x != nil {
		return x.Occupation
	}
	return nil
}

type SecularSolveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fock          *Matrix                `protobuf:"bytes,1,opt,name=fock,proto3" json:"fock,omitempty"`
	Overlap       *Matrix                `protobuf:"bytes,2,opt,name=overlap,proto3" json:"overlap,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SecularSolveRequest) Reset() {
	*x = SecularSolveRequest{}
	mi := &file_engine_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SecularSolveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SecularSolveRequest) ProtoMessage() {}

func (x *SecularSolveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_engine_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SecularSolveRequest.ProtoReflect.Descriptor instead.
func (*SecularSolveRequest) Descriptor() ([]byte, []int) {
	return file_engine_proto_rawDescGZIP(), []int{11}
}

func (x *SecularSolveRequest) GetFock() *Matrix {
	if x != nil {
		return x.Fock
	}
	return nil
}

func (x *SecularSolveRequest) GetOverlap() *Matrix {
	if x != nil {
		return x.Overlap
	}
	return nil
}

type SecularSolveResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	OrbitalEnergies []float64              `protobuf:"fixed64,1,rep,packed,name=orbital_energies,json=orbitalEnergies,proto3" json:"orbital_energies,omitempty"`
	Coeffs          *Matrix                `protobuf:"bytes,2,opt,name=coeffs,proto3" json:"coeffs,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *SecularSolveResponse) Reset() {
	*x = SecularSolveResponse{}
	mi := &file_engine_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SecularSolveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SecularSolveResponse) ProtoMessage() {}

func (x *SecularSolveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_engine_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SecularSolveResponse.ProtoReflect.Descriptor instead.
func (*SecularSolveResponse) Descriptor() ([]byte, []int) {
	return file_engine_proto_rawDescGZIP(), []int{12}
}

func (x *SecularSolveResponse) GetOrbitalEnergies() []float64 {
	if x != nil {
		return x.OrbitalEnergies
	}
	return nil
}

func (x *SecularSolveResponse) GetCoeffs() *Matrix {
	if x != nil {
		return x.Coeffs
	}
	return nil
}

var File_engine_proto protoreflect.FileDescriptor

const file_engine_proto_rawDesc = "" +
	"\n" +
	"\fengine.proto\x12\x13multiseed.engine.v1\"D\n" +
	"\x06Matrix\x12\x12\n" +
	"\x04rows\x18\x01 \x01(\x05R\x04rows\x12\x12\n" +
	"\x04cols\x18\x02 \x01(\x05R\x04cols\x12\x12\n" +
	"\x04data\x18\x03 \x03(\x01R\x04data\"\x13\n" +
	"\x11GetOverlapRequest\"\x1b\n" +
	"\x19GetCoreHamiltonianRequest\"E\n" +
	"\x0eMatrixResponse\x123\n" +
	"\x06matrix\x18\x01 \x01(\v2\x1b.multiseed.engine.v1.MatrixR\x06matrix\"I\n" +
	"\x10BuildFockRequest\x125\n" +
	"\adensity\x18\x01 \x01(\v2\x1b.multiseed.engine.v1.MatrixR\adensity\"\x8c\x01\n" +
	"\x11NewtonStepRequest\x123\n" +
	"\x06coeffs\x18\x01 \x01(\v2\x1b.multiseed.engine.v1.MatrixR\x06coeffs\x12\x1e\n" +
	"\n" +
	"occupation\x18\x02 \x03(\x01R\n" +
	"occupation\x12\"\n" +
	"\rmax_step_size\x18\x03 \x01(\x01R\vmaxStepSize\"g\n" +
	"\x12NewtonStepResponse\x123\n" +
	"\x06coeffs\x18\x01 \x01(\v2\x1b.multiseed.engine.v1.MatrixR\x06coeffs\x12\x1c\n" +
	"\tconverged\x18\x02 \x01(\bR\tconverged\"F\n" +
	"\rEnergyRequest\x125\n" +
	"\adensity\x18\x01 \x01(\v2\x1b.multiseed.engine.v1.MatrixR\adensity\"&\n" +
	"\x0eEnergyResponse\x12\x14\n" +
	"\x05value\x18\x01 \x01(\x01R\x05value\"s\n" +
	"\x11OccupationRequest\x12)\n" +
	"\x10orbital_energies\x18\x01 \x03(\x01R\x0forbitalEnergies\x123\n" +
	"\x06coeffs\x18\x02 \x01(\v2\x1b.multiseed.engine.v1.MatrixR\x06coeffs\"4\n" +
	"\x12OccupationResponse\x12\x1e\n" +
	"\n" +
	"occupation\x18\x01 \x03(\x01R\n" +
	"occupation\"}\n" +
	"\x13SecularSolveRequest\x12/\n" +
	"\x04fock\x18\x01 \x01(\v2\x1b.multiseed.engine.v1.MatrixR\x04fock\x125\n" +
	"\aoverlap\x18\x02 \x01(\v2\x1b.multiseed.engine.v1.MatrixR\aoverlap\"v\n" +
	"\x14SecularSolveResponse\x12)\n" +
	"\x10orbital_energies\x18\x01 \x03(\x01R\x0forbitalEnergies\x123\n" +
	"\x06coeffs\x18\x02 \x01(\v2\x1b.multiseed.engine.v1.MatrixR\x06coeffs2\x89\x06\n" +
	"\rEngineService\x12Y\n" +
	"\n" +
	"GetOverlap\x12&.multiseed.engine.v1.GetOverlapRequest\x1a#.multiseed.engine.v1.MatrixResponse\x12i\n" +
	"\x12GetCoreHamiltonian\x12..multiseed.engine.v1.GetCoreHamiltonianRequest\x1a#.multiseed.engine.v1.MatrixResponse\x12W\n" +
	"\tBuildFock\x12%.multiseed.engine.v1.BuildFockRequest\x1a#.multiseed.engine.v1.MatrixResponse\x12`\n" +
	"\rOneNewtonStep\x12&.multiseed.engine.v1.NewtonStepRequest\x1a'.multiseed.engine.v1.NewtonStepResponse\x12[\n" +
	"\x10EnergyElectronic\x12\".multiseed.engine.v1.EnergyRequest\x1a#.multiseed.engine.v1.EnergyResponse\x12V\n" +
	"\vEnergyTotal\x12\".multiseed.engine.v1.EnergyRequest\x1a#.multiseed.engine.v1.EnergyResponse\x12]\n" +
	"\n" +
	"Occupation\x12&.multiseed.engine.v1.OccupationRequest\x1a'.multiseed.engine.v1.OccupationResponse\x12c\n" +
	"\fSecularSolve\x12(.multiseed.engine.v1.SecularSolveRequest\x1a).multiseed.engine.v1.SecularSolveResponseB8Z6github.com/mhalvorsen/multiseed/go-solver/gen/enginepbb\x06proto3"

var (
	file_engine_proto_rawDescOnce sync.Once
	file_engine_proto_rawDescData []byte
)

func file_engine_proto_rawDescGZIP() []byte {
	file_engine_proto_rawDescOnce.Do(func() {
		file_engine_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_engine_proto_rawDesc), len(file_engine_proto_rawDesc)))
	})
	return file_engine_proto_rawDescData
}

var file_engine_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_engine_proto_goTypes = []any{
	(*Matrix)(nil),                    // 0: multiseed.engine.v1.Matrix
	(*GetOverlapRequest)(nil),         // 1: multiseed.engine.v1.GetOverlapRequest
	(*GetCoreHamiltonianRequest)(nil), // 2: multiseed.engine.v1.GetCoreHamiltonianRequest
	(*MatrixResponse)(nil),            // 3: multiseed.engine.v1.MatrixResponse
	(*BuildFockRequest)(nil),          // 4: multiseed.engine.v1.BuildFockRequest
	(*NewtonStepRequest)(nil),         // 5: multiseed.engine.v1.NewtonStepRequest
	(*NewtonStepResponse)(nil),        // 6: multiseed.engine.v1.NewtonStepResponse
	(*EnergyRequest)(nil),             // 7: multiseed.engine.v1.EnergyRequest
	(*EnergyResponse)(nil),            // 8: multiseed.engine.v1.EnergyResponse
	(*OccupationRequest)(nil),         // 9: multiseed.engine.v1.OccupationRequest
	(*OccupationResponse)(nil),        // 10: multiseed.engine.v1.OccupationResponse
	(*SecularSolveRequest)(nil),       // 11: multiseed.engine.v1.SecularSolveRequest
	(*SecularSolveResponse)(nil),      // 12: multiseed.engine.v1.SecularSolveResponse
}
var file_engine_proto_depIdxs = []int32{
	0,  // 0: multiseed.engine.v1.MatrixResponse.matrix:type_name -> multiseed.engine.v1.Matrix
	0,  // 1: multiseed.engine.v1.BuildFockRequest.density:type_name -> multiseed.engine.v1.Matrix
	0,  // 2: multiseed.engine.v1.NewtonStepRequest.coeffs:type_name -> multiseed.engine.v1.Matrix
	0,  // 3: multiseed.engine.v1.NewtonStepResponse.coeffs:type_name -> multiseed.engine.v1.Matrix
	0,  // 4: multiseed.engine.v1.EnergyRequest.density:type_name -> multiseed.engine.v1.Matrix
	0,  // 5: multiseed.engine.v1.OccupationRequest.coeffs:type_name -> multiseed.engine.v1.Matrix
	0,  // 6: multiseed.engine.v1.SecularSolveRequest.fock:type_name -> multiseed.engine.v1.Matrix
	0,  // 7: multiseed.engine.v1.SecularSolveRequest.overlap:type_name -> multiseed.engine.v1.Matrix
	0,  // 8: multiseed.engine.v1.SecularSolveResponse.coeffs:type_name -> multiseed.engine.v1.Matrix
	1,  // 9: multiseed.engine.v1.EngineService.GetOverlap:input_type -> multiseed.engine.v1.GetOverlapRequest
	2,  // 10: multiseed.engine.v1.EngineService.GetCoreHamiltonian:input_type -> multiseed.engine.v1.GetCoreHamiltonianRequest
	4,  // 11: multiseed.engine.v1.EngineService.BuildFock:input_type -> multiseed.engine.v1.BuildFockRequest
	5,  // 12: multiseed.engine.v1.EngineService.OneNewtonStep:input_type -> multiseed.engine.v1.NewtonStepRequest
	7,  // 13: multiseed.engine.v1.EngineService.EnergyElectronic:input_type -> multiseed.engine.v1.EnergyRequest
	7,  // 14: multiseed.engine.v1.EngineService.EnergyTotal:input_type -> multiseed.engine.v1.EnergyRequest
	9,  // 15: multiseed.engine.v1.EngineService.Occupation:input_type -> multiseed.engine.v1.OccupationRequest
	11, // 16: multiseed.engine.v1.EngineService.SecularSolve:input_type -> multiseed.engine.v1.SecularSolveRequest
	3,  // 17: multiseed.engine.v1.EngineService.GetOverlap:output_type -> multiseed.engine.v1.MatrixResponse
	3,  // 18: multiseed.engine.v1.EngineService.GetCoreHamiltonian:output_type -> multiseed.engine.v1.MatrixResponse
	3,  // 19: multiseed.engine.v1.EngineService.BuildFock:output_type -> multiseed.engine.v1.MatrixResponse
	6,  // 20: multiseed.engine.v1.EngineService.OneNewtonStep:output_type -> multiseed.engine.v1.NewtonStepResponse
	8,  // 21: multiseed.engine.v1.EngineService.EnergyElectronic:output_type -> multiseed.engine.v1.EnergyResponse
	8,  // 22: multiseed.engine.v1.EngineService.EnergyTotal:output_type -> multiseed.engine.v1.EnergyResponse
	10, // 23: multiseed.engine.v1.EngineService.Occupation:output_type -> multiseed.engine.v1.OccupationResponse
	12, // 24: multiseed.engine.v1.EngineService.SecularSolve:output_type -> multiseed.engine.v1.SecularSolveResponse
	17, // [17:25] is the sub-list for method output_type
	9,  // [9:17] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_engine_proto_init() }
func file_engine_proto_init() {
	if File_engine_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_engine_proto_rawDesc), len(file_engine_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_engine_proto_goTypes,
		DependencyIndexes: file_engine_proto_depIdxs,
		MessageInfos:      file_engine_proto_msgTypes,
	}.Build()
	File_engine_proto = out.File
	file_engine_proto_goTypes = nil
	file_engine_proto_depIdxs = nil
}
