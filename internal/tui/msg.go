package tui

import "pet-store-admin/internal/desk"

// Msg es la interfaz sellada de los mensajes propios de la TUI.
// Cada uno trae el resultado de un request del desk que corrió fuera del loop.
type Msg interface {
	sealed()
}

type MsgBootstrapped struct {
	Result desk.BootstrapResult
}

func (MsgBootstrapped) sealed() {}

type MsgRefreshed struct {
	Result desk.RefreshResult
}

func (MsgRefreshed) sealed() {}

type MsgViewLoaded struct {
	Result desk.ViewResult
}

func (MsgViewLoaded) sealed() {}

type MsgSubmitted struct {
	Result desk.SubmitResult
}

func (MsgSubmitted) sealed() {}

type MsgDeleted struct {
	Result desk.DeleteResult
}

func (MsgDeleted) sealed() {}
