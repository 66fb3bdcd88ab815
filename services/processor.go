package services

import (
	"context"
	goerrors "errors"
	"io"
	"log/slog"
	"roomchat/contract"
	"roomchat/domain"
	"roomchat/errors"
	"roomchat/observability"
)

// Processor runs the command loop of every connection. It holds no
// per-connection data; each Serve call owns its own connState.
type Processor struct {
	log               *slog.Logger
	sessions          contract.ISessionRegistry
	rooms             contract.IRoomDirectory
	router            contract.IRouter
	monitoring        *observability.MonitoringManager
	maxNicknameLength int
	help              []string
}

func NewProcessor(log *slog.Logger, sessions contract.ISessionRegistry, rooms contract.IRoomDirectory,
	router contract.IRouter, monitoring *observability.MonitoringManager, maxNicknameLength int) *Processor {
	return &Processor{
		log:               log,
		sessions:          sessions,
		rooms:             rooms,
		router:            router,
		monitoring:        monitoring,
		maxNicknameLength: maxNicknameLength,
		help:              renderHelp(),
	}
}

// Serve drives one connection from nickname negotiation to cleanup.
// It returns once the client sent /bye or the connection failed; closing
// the transport is left to the caller.
func (p *Processor) Serve(ctx context.Context, conn contract.LineConn) {
	state := newConnState(conn.RemoteAddr())
	log := p.log.With("session_id", state.sessionID, "remote", state.remote)
	p.monitoring.IncrConnections()

	state, err := p.register(ctx, conn, state)
	if err != nil {
		log.Info("Connection closed before registration", "error", err)
		return
	}
	log = log.With("nickname", state.nickname)
	log.Info("User connected")

	p.greet(ctx, state)

	for state.phase != Terminated {
		line, err := conn.ReadLine(ctx)
		if err != nil {
			if goerrors.Is(err, io.EOF) {
				log.Info("Client closed the connection")
			} else {
				log.Warn("Read failed, disconnecting", "error", err)
			}
			break
		}
		state = p.dispatch(ctx, log, state, line)
	}

	// Cleanup must reach the other members even when ctx is already canceled.
	p.disconnect(context.WithoutCancel(ctx), log, state)
}

// register loops until a free, valid nickname is reserved for conn.
func (p *Processor) register(ctx context.Context, conn contract.LineConn, state connState) (connState, error) {
	if err := conn.Send(ctx, domain.NicknamePrompt); err != nil {
		return state, err
	}
	for {
		line, err := conn.ReadLine(ctx)
		if err != nil {
			return state, err
		}

		nickname, err := domain.NormalizeNickname(line, p.maxNicknameLength)
		if err != nil {
			p.log.Debug("Rejected nickname", "session_id", state.sessionID, "error", err)
			if err := conn.Send(ctx, domain.NicknameInvalidNotice); err != nil {
				return state, err
			}
			continue
		}

		err = p.sessions.Register(nickname, conn)
		if goerrors.Is(err, errors.ErrNicknameTaken) {
			if err := conn.Send(ctx, domain.NicknameTakenNotice); err != nil {
				return state, err
			}
			continue
		}
		if err != nil {
			return state, err
		}
		return state.registered(nickname), nil
	}
}

func (p *Processor) greet(ctx context.Context, state connState) {
	p.notice(ctx, state, domain.WelcomeNotice(state.nickname))
	p.notice(ctx, state, p.help...)
	p.router.Announce(ctx, state.nickname, domain.ArrivalNotice(state.nickname))
}

func (p *Processor) dispatch(ctx context.Context, log *slog.Logger, state connState, line string) connState {
	cmd := domain.ParseCommand(line)
	p.monitoring.IncrCommand(cmd.Name())

	switch c := cmd.(type) {
	case domain.ByeCommand:
		log.Info("User said bye", "phase", state.phase.String(), "room_id", state.roomID)
		return state.terminate()

	case domain.WhisperCommand:
		if c.Malformed {
			log.Debug("Ignoring malformed whisper", "line", line)
			return state
		}
		_ = p.router.Whisper(ctx, state.nickname, c.Target, c.Text)
		return state

	case domain.ListRoomsCommand:
		lines := []string{domain.RoomListHeader}
		for _, id := range p.rooms.ListRooms() {
			lines = append(lines, domain.RoomLine(id))
		}
		p.notice(ctx, state, append(lines, domain.RoomListFooter)...)
		return state

	case domain.CreateRoomCommand:
		return p.createRoom(ctx, log, state)

	case domain.JoinRoomCommand:
		return p.joinRoom(ctx, log, state, c)

	case domain.ExitRoomCommand:
		return p.leaveRoom(ctx, log, state, true)

	case domain.ListUsersCommand:
		p.notice(ctx, state, append([]string{domain.UserListHeader}, p.sessions.ListAll()...)...)
		return state

	case domain.ListRoomUsersCommand:
		roomID, ok := p.rooms.CurrentRoom(state.nickname)
		if !ok {
			p.notice(ctx, state, domain.NotInRoomNotice)
			return state
		}
		members, ok := p.rooms.ListMembers(roomID)
		if !ok {
			p.notice(ctx, state, domain.NotInRoomNotice)
			return state
		}
		p.notice(ctx, state, append([]string{domain.RoomUsersHeader(roomID)}, members...)...)
		return state

	case domain.HelpCommand:
		p.notice(ctx, state, p.help...)
		return state

	case domain.PostMessageCommand:
		p.router.BroadcastToRoom(ctx, state.nickname, c.Content)
		return state

	default:
		log.Error("Unhandled command", "command", cmd.Name())
		return state
	}
}

func (p *Processor) createRoom(ctx context.Context, log *slog.Logger, state connState) connState {
	roomID, err := p.rooms.CreateRoom(state.nickname)
	if err != nil {
		p.notice(ctx, state, domain.CreateInRoomNotice)
		return state
	}
	log.Info("Room created", "room_id", roomID)
	p.notice(ctx, state, domain.RoomEnteredNotice(roomID))
	return state.enterRoom(roomID)
}

func (p *Processor) joinRoom(ctx context.Context, log *slog.Logger, state connState, cmd domain.JoinRoomCommand) connState {
	// checked before parsing so "/join abc" from inside a room reports the room, not the number
	if _, inRoom := p.rooms.CurrentRoom(state.nickname); inRoom {
		p.notice(ctx, state, domain.JoinInRoomNotice)
		return state
	}
	roomID, err := cmd.RoomID()
	if err != nil {
		p.notice(ctx, state, domain.MalformedRoomNotice)
		return state
	}

	others, err := p.rooms.JoinRoom(state.nickname, roomID)
	switch {
	case goerrors.Is(err, errors.ErrAlreadyInRoom):
		p.notice(ctx, state, domain.JoinInRoomNotice)
		return state
	case goerrors.Is(err, errors.ErrRoomNotFound):
		p.notice(ctx, state, domain.RoomNotFoundNotice(roomID))
		return state
	case err != nil:
		log.Error("Join failed", "room_id", roomID, "error", err)
		return state
	}

	log.Info("Room joined", "room_id", roomID, "members", len(others))
	p.notice(ctx, state, domain.RoomEnteredNotice(roomID))
	p.router.NotifyRoom(ctx, roomID, domain.MemberJoinedNotice(state.nickname), state.nickname)
	return state.enterRoom(roomID)
}

// leaveRoom removes the user from its room and tells the remaining members.
// explicit is true for /exit and /bye, which also get a confirmation.
func (p *Processor) leaveRoom(ctx context.Context, log *slog.Logger, state connState, explicit bool) connState {
	roomID, remaining, ok := p.rooms.LeaveRoom(state.nickname)
	if !ok {
		if explicit {
			p.notice(ctx, state, domain.NotInRoomNotice)
		}
		return state.leaveRoom()
	}

	if explicit {
		p.notice(ctx, state, domain.RoomLeftNotice(roomID))
	}
	p.router.NotifyRoom(ctx, roomID, domain.MemberLeftNotice(state.nickname), state.nickname)
	if len(remaining) == 0 {
		log.Info("Room deleted", "room_id", roomID)
	} else {
		log.Info("Room left", "room_id", roomID, "members", len(remaining))
	}
	return state.leaveRoom()
}

// disconnect releases everything the session held. It runs after /bye and
// after any read failure.
func (p *Processor) disconnect(ctx context.Context, log *slog.Logger, state connState) {
	graceful := state.phase == Terminated
	if _, inRoom := p.rooms.CurrentRoom(state.nickname); inRoom {
		state = p.leaveRoom(ctx, log, state, graceful)
	}
	p.sessions.Unregister(state.nickname)
	log.Info("User disconnected", "graceful", graceful)
}

// notice sends lines to the connection's own sink. Failures are only
// logged; the read loop notices a dead connection on its next read.
func (p *Processor) notice(ctx context.Context, state connState, lines ...string) {
	for _, line := range lines {
		if err := p.router.SystemNotice(ctx, state.nickname, line); err != nil {
			p.log.Debug("Notice not delivered", "nickname", state.nickname, "error", err)
			return
		}
	}
}
