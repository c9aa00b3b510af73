// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: openentropy/v1/collector.proto

package collectorv1

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

type CollectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Source        string                 `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Count         uint32                 `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CollectRequest) Reset() {
	*x = CollectRequest{}
	mi := &file_openentropy_v1_collector_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CollectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CollectRequest) ProtoMessage() {}

func (x *CollectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_openentropy_v1_collector_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CollectRequest.ProtoReflect.Descriptor instead.
func (*CollectRequest) Descriptor() ([]byte, []int) {
	return file_openentropy_v1_collector_proto_rawDescGZIP(), []int{0}
}

func (x *CollectRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *CollectRequest) GetCount() uint32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type CollectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Samples       []uint64               `protobuf:"varint,1,rep,packed,name=samples,proto3" json:"samples,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CollectResponse) Reset() {
	*x = CollectResponse{}
	mi := &file_openentropy_v1_collector_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CollectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CollectResponse) ProtoMessage() {}

func (x *CollectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_openentropy_v1_collector_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CollectResponse.ProtoReflect.Descriptor instead.
func (*CollectResponse) Descriptor() ([]byte, []int) {
	return file_openentropy_v1_collector_proto_rawDescGZIP(), []int{1}
}

func (x *CollectResponse) GetSamples() []uint64 {
	if x != nil {
		return x.Samples
	}
	return nil
}

type ListSourcesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSourcesRequest) Reset() {
	*x = ListSourcesRequest{}
	mi := &file_openentropy_v1_collector_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSourcesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSourcesRequest) ProtoMessage() {}

func (x *ListSourcesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_openentropy_v1_collector_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSourcesRequest.ProtoReflect.Descriptor instead.
func (*ListSourcesRequest) Descriptor() ([]byte, []int) {
	return file_openentropy_v1_collector_proto_rawDescGZIP(), []int{2}
}

type SourceInfo struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Name        string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	// cost hints at per-sample latency so the caller can cap stage sizes.
	Cost          string `protobuf:"bytes,3,opt,name=cost,proto3" json:"cost,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SourceInfo) Reset() {
	*x = SourceInfo{}
	mi := &file_openentropy_v1_collector_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SourceInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SourceInfo) ProtoMessage() {}

func (x *SourceInfo) ProtoReflect() protoreflect.Message {
	mi := &file_openentropy_v1_collector_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SourceInfo.ProtoReflect.Descriptor instead.
func (*SourceInfo) Descriptor() ([]byte, []int) {
	return file_openentropy_v1_collector_proto_rawDescGZIP(), []int{3}
}

func (x *SourceInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SourceInfo) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *SourceInfo) GetCost() string {
	if x != nil {
		return x.Cost
	}
	return ""
}

type ListSourcesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sources       []*SourceInfo          `protobuf:"bytes,1,rep,name=sources,proto3" json:"sources,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSourcesResponse) Reset() {
	*x = ListSourcesResponse{}
	mi := &file_openentropy_v1_collector_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSourcesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSourcesResponse) ProtoMessage() {}

func (x *ListSourcesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_openentropy_v1_collector_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSourcesResponse.ProtoReflect.Descriptor instead.
func (*ListSourcesResponse) Descriptor() ([]byte, []int) {
	return file_openentropy_v1_collector_proto_rawDescGZIP(), []int{4}
}

func (x *ListSourcesResponse) GetSources() []*SourceInfo {
	if x != nil {
		return x.Sources
	}
	return nil
}

var File_openentropy_v1_collector_proto protoreflect.FileDescriptor

const file_openentropy_v1_collector_proto_rawDesc = "" +
	"\n" +
	"\x1eopenentropy/v1/collector.proto\x12\x0eopenentropy.v1\">\n" +
	"\x0eCollectRequest\x12\x16\n" +
	"\x06source\x18\x01 \x01(\tR\x06source\x12\x14\n" +
	"\x05count\x18\x02 \x01(\rR\x05count\"+\n" +
	"\x0fCollectResponse\x12\x18\n" +
	"\asamples\x18\x01 \x03(\x04R\asamples\"\x14\n" +
	"\x12ListSourcesRequest\"V\n" +
	"\n" +
	"SourceInfo\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x12\n" +
	"\x04cost\x18\x03 \x01(\tR\x04cost\"K\n" +
	"\x13ListSourcesResponse\x124\n" +
	"\asources\x18\x01 \x03(\v2\x1a.openentropy.v1.SourceInfoR\asources2\xb6\x01\n" +
	"\x10CollectorService\x12J\n" +
	"\aCollect\x12\x1e.openentropy.v1.CollectRequest\x1a\x1f.openentropy.v1.CollectResponse\x12V\n" +
	"\vListSources\x12\".openentropy.v1.ListSourcesRequest\x1a#.openentropy.v1.ListSourcesResponseB7Z5github.com/openentropy/openentropy-go/gen/collectorv1b\x06proto3"

var (
	file_openentropy_v1_collector_proto_rawDescOnce sync.Once
	file_openentropy_v1_collector_proto_rawDescData []byte
)

func file_openentropy_v1_collector_proto_rawDescGZIP() []byte {
	file_openentropy_v1_collector_proto_rawDescOnce.Do(func() {
		file_openentropy_v1_collector_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_openentropy_v1_collector_proto_rawDesc), len(file_openentropy_v1_collector_proto_rawDesc)))
	})
	return file_openentropy_v1_collector_proto_rawDescData
}

var file_openentropy_v1_collector_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_openentropy_v1_collector_proto_goTypes = []any{
	(*CollectRequest)(nil),      // 0: openentropy.v1.CollectRequest
	(*CollectResponse)(nil),     // 1: openentropy.v1.CollectResponse
	(*ListSourcesRequest)(nil),  // 2: openentropy.v1.ListSourcesRequest
	(*SourceInfo)(nil),          // 3: openentropy.v1.SourceInfo
	(*ListSourcesResponse)(nil), // 4: openentropy.v1.ListSourcesResponse
}
var file_openentropy_v1_collector_proto_depIdxs = []int32{
	3, // 0: openentropy.v1.ListSourcesResponse.sources:type_name -> openentropy.v1.SourceInfo
	0, // 1: openentropy.v1.CollectorService.Collect:input_type -> openentropy.v1.CollectRequest
	2, // 2: openentropy.v1.CollectorService.ListSources:input_type -> openentropy.v1.ListSourcesRequest
	1, // 3: openentropy.v1.CollectorService.Collect:output_type -> openentropy.v1.CollectResponse
	4, // 4: openentropy.v1.CollectorService.ListSources:output_type -> openentropy.v1.ListSourcesResponse
	3, // [3:5] is the sub-list for method output_type
	1, // [1:3] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_openentropy_v1_collector_proto_init() }
func file_openentropy_v1_collector_proto_init() {
	if File_openentropy_v1_collector_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_openentropy_v1_collector_proto_rawDesc), len(file_openentropy_v1_collector_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_openentropy_v1_collector_proto_goTypes,
		DependencyIndexes: file_openentropy_v1_collector_proto_depIdxs,
		MessageInfos:      file_openentropy_v1_collector_proto_msgTypes,
	}.Build()
	File_openentropy_v1_collector_proto = out.File
	file_openentropy_v1_collector_proto_goTypes = nil
	file_openentropy_v1_collector_proto_depIdxs = nil
}
