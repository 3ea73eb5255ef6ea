package grpc

import (
	pb "github.com/dmitrijs2005/clientportal/internal/proto"
)

// SubscribeChanges streams conversation change events until the client
// disconnects or the server shuts down. Events are invalidation signals
// only; the client refetches through the list RPCs.
func (s *GRPCServer) SubscribeChanges(req *pb.ConversationRequest, stream pb.PortalService_SubscribeChangesServer) error {

	ctx := stream.Context()

	participantID, err := participantFromRequest(ctx, req.ParticipantId)
	if err != nil {
		return err
	}

	events, cancel := s.conversations.Subscribe(participantID)
	defer cancel()

	s.logger.Info(ctx, "Change subscription opened", "participant_id", participantID)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := stream.Send(&pb.ChangeEvent{
				ParticipantId: ev.ParticipantID,
				Kind:          ev.Kind,
				EntityId:      ev.EntityID,
			}); err != nil {
				return err
			}
		}
	}
}
