package http

import (
	"encoding/json"

	"github.com/kmorozov/caseboard-server/internal/core"
	"github.com/kmorozov/caseboard-server/internal/proto"
)

// envelopeToCommand turns a decoded envelope into a core command.
//
// Returns (nil, nil) for frames this protocol discards without feedback:
// unknown types, so future message kinds pass through harmlessly, and
// payloads missing a required field. A non-nil error means the payload was
// not valid JSON for its type; the caller logs it and drops the frame. No
// error frame is ever sent back.
func envelopeToCommand(env proto.Envelope) (*core.Command, error) {
	switch env.Type {
	case proto.TypeJoinRoom:
		var p proto.JoinRoomPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, err
		}
		if p.RoomID == "" || p.Player == nil || p.Player.ID == "" {
			return nil, nil
		}
		return &core.Command{
			Kind:     core.CommandJoinRoom,
			RoomID:   p.RoomID,
			PuzzleID: p.PuzzleID,
			Player: &core.Player{
				ID:          p.Player.ID,
				DisplayName: p.Player.DisplayName,
				Role:        core.Role(p.Player.Role),
			},
		}, nil
	case proto.TypeDiscoverClue:
		var p proto.DiscoverCluePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, err
		}
		if p.RoomID == "" || p.ClueID == "" || p.PlayerID == "" {
			return nil, nil
		}
		return &core.Command{
			Kind:     core.CommandDiscoverClue,
			RoomID:   p.RoomID,
			ClueID:   p.ClueID,
			PlayerID: p.PlayerID,
		}, nil
	case proto.TypeAddTheory:
		var p proto.AddTheoryPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, err
		}
		if p.RoomID == "" || p.PlayerID == "" || p.Text == "" {
			return nil, nil
		}
		return &core.Command{
			Kind:     core.CommandAddTheory,
			RoomID:   p.RoomID,
			PlayerID: p.PlayerID,
			Text:     p.Text,
		}, nil
	case proto.TypeSolveMystery:
		var p proto.SolveMysteryPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, err
		}
		if p.RoomID == "" {
			return nil, nil
		}
		return &core.Command{
			Kind:   core.CommandSolveMystery,
			RoomID: p.RoomID,
		}, nil
	default:
		return nil, nil
	}
}

// outboundFromEvent converts a hub event into its wire shape.
func outboundFromEvent(ev *core.Event) proto.Outbound {
	switch ev.Kind {
	case core.EventPlayerJoined:
		return proto.Outbound{
			Type: proto.TypePlayerJoined,
			Payload: proto.PlayerJoinedPayload{
				Player: playerToProto(ev.Player),
				Room:   roomToProto(ev.Room),
			},
		}
	case core.EventPlayerLeft:
		return proto.Outbound{
			Type:    proto.TypePlayerLeft,
			Payload: proto.PlayerLeftPayload{PlayerID: ev.PlayerID},
		}
	case core.EventClueDiscovered:
		return proto.Outbound{
			Type: proto.TypeClueDiscovered,
			Payload: proto.ClueDiscoveredPayload{
				ClueID:            ev.ClueID,
				PlayerID:          ev.PlayerID,
				DiscoveredClueIDs: ev.Clues,
			},
		}
	case core.EventTheoryAdded:
		return proto.Outbound{
			Type: proto.TypeTheoryAdded,
			Payload: proto.TheoryAddedPayload{
				Theory:   theoryToProto(*ev.Theory),
				Theories: theoriesToProto(ev.Theories),
			},
		}
	case core.EventMysterySolved:
		return proto.Outbound{
			Type:    proto.TypeMysterySolved,
			Payload: proto.MysterySolvedPayload{RoomID: ev.RoomID},
		}
	default:
		return proto.Outbound{Type: "unknown"}
	}
}

func playerToProto(p *core.Player) proto.Player {
	if p == nil {
		return proto.Player{}
	}
	return proto.Player{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Role:        string(p.Role),
		RoomID:      p.RoomID,
	}
}

func theoryToProto(t core.Theory) proto.Theory {
	return proto.Theory{
		PlayerID:  t.PlayerID,
		Text:      t.Text,
		Timestamp: t.Timestamp,
	}
}

func theoriesToProto(ts []core.Theory) []proto.Theory {
	out := make([]proto.Theory, 0, len(ts))
	for _, t := range ts {
		out = append(out, theoryToProto(t))
	}
	return out
}

func roomToProto(snap *core.RoomSnapshot) proto.Room {
	if snap == nil {
		return proto.Room{}
	}
	players := make([]proto.Player, 0, len(snap.Players))
	for _, p := range snap.Players {
		players = append(players, proto.Player{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			Role:        string(p.Role),
			RoomID:      p.RoomID,
		})
	}
	return proto.Room{
		ID:                snap.ID,
		PuzzleID:          snap.PuzzleID,
		Players:           players,
		DiscoveredClueIDs: snap.DiscoveredClueIDs,
		Theories:          theoriesToProto(snap.Theories),
		Solved:            snap.Solved,
	}
}
