/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package annotator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const annotateMethod = "/tagger.Tagger/Annotate"

// Requests and responses are google.protobuf.Struct messages carrying the same
// JSON shape as the HTTP tagger: {"text": ...} in, a Document out.

// NewGRPC returns an annotator calling the tagger service over conn.
func NewGRPC(conn grpc.ClientConnInterface) Annotator {
	return &grpcAnnotator{conn: conn}
}

type grpcAnnotator struct {
	conn grpc.ClientConnInterface
}

func (g *grpcAnnotator) Annotate(ctx context.Context, text string) ([]pos.Sentence, error) {
	text, err := normalize(text)
	if err != nil {
		return nil, err
	}

	req, err := structpb.NewStruct(map[string]interface{}{"text": text})
	if err != nil {
		return nil, err
	}

	resp := new(structpb.Struct)
	if err := g.conn.Invoke(ctx, annotateMethod, req, resp); err != nil {
		if status.Code(err) == codes.InvalidArgument {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, status.Convert(err).Message())
		}
		return nil, fmt.Errorf("tagger request: %w", err)
	}

	b, err := protojson.Marshal(resp)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("tagger response: %w", err)
	}

	return canonical(doc), nil
}

// TaggerServer is the server side of the tagger service.
type TaggerServer interface {
	Annotate(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterTaggerServer serves a on s as the tagger service.
func RegisterTaggerServer(s grpc.ServiceRegistrar, a Annotator) {
	s.RegisterService(&taggerServiceDesc, &taggerServer{annotator: a})
}

type taggerServer struct {
	annotator Annotator
}

func (t *taggerServer) Annotate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	text, ok := req.GetFields()["text"]
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "text is required")
	}

	sentences, err := t.annotator.Annotate(ctx, text.GetStringValue())
	if errors.Is(err, ErrInvalidEncoding) {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	} else if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	if sentences == nil {
		sentences = []pos.Sentence{}
	}
	b, err := json.Marshal(Document{Sentences: sentences})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	resp := new(structpb.Struct)
	if err := protojson.Unmarshal(b, resp); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

func annotateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TaggerServer).Annotate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: annotateMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TaggerServer).Annotate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var taggerServiceDesc = grpc.ServiceDesc{
	ServiceName: "tagger.Tagger",
	HandlerType: (*TaggerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Annotate",
			Handler:    annotateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tagger.proto",
}
