package service_test

import (
	"context"
	"errors"
	"sort"

	"github.com/Javier-GarciaP/sunbody/internal/model"
	"github.com/Javier-GarciaP/sunbody/internal/money"
	"github.com/Javier-GarciaP/sunbody/internal/repository"
	"github.com/Javier-GarciaP/sunbody/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = errors.New("not found")

// ── stubProductoRepo ──────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
	variantes map[uuid.UUID]*model.Variante
	refs      int64
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		productos: make(map[uuid.UUID]*model.Producto),
		variantes: make(map[uuid.UUID]*model.Variante),
	}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Variantes {
		v := &p.Variantes[i]
		if v.ID == uuid.Nil {
			v.ID = uuid.New()
		}
		v.ProductoID = p.ID
		cp := *v
		r.variantes[v.ID] = &cp
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) CountReferences(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.refs, nil
}

func (r *stubProductoRepo) buscarVariante(productoID, colorID uuid.UUID) *model.Variante {
	for _, v := range r.variantes {
		if v.ProductoID == productoID && v.ColorID == colorID {
			return v
		}
	}
	return nil
}

// Los lookups devuelven copias: una fila leída de la base es un snapshot, no
// un alias de lo que UpdateStockTx va a mutar después.
func (r *stubProductoRepo) FindVariante(_ context.Context, productoID, colorID uuid.UUID) (*model.Variante, error) {
	if v := r.buscarVariante(productoID, colorID); v != nil {
		cp := *v
		return &cp, nil
	}
	return nil, errNotFound
}

func (r *stubProductoRepo) CreateVariante(_ context.Context, v *model.Variante) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	cp := *v
	r.variantes[v.ID] = &cp
	return nil
}

func (r *stubProductoRepo) UpdateVariante(_ context.Context, v *model.Variante) error {
	cp := *v
	r.variantes[v.ID] = &cp
	return nil
}

func (r *stubProductoRepo) DeleteVariante(_ context.Context, id uuid.UUID) error {
	delete(r.variantes, id)
	return nil
}

func (r *stubProductoRepo) EnsureVarianteTx(_ *gorm.DB, productoID, colorID uuid.UUID) (*model.Variante, error) {
	if v := r.buscarVariante(productoID, colorID); v != nil {
		cp := *v
		return &cp, nil
	}
	v := &model.Variante{ID: uuid.New(), ProductoID: productoID, ColorID: colorID, Stock: 0}
	r.variantes[v.ID] = v
	cp := *v
	return &cp, nil
}

func (r *stubProductoRepo) FindVarianteTx(_ *gorm.DB, productoID, colorID uuid.UUID) (*model.Variante, error) {
	if v := r.buscarVariante(productoID, colorID); v != nil {
		cp := *v
		return &cp, nil
	}
	return nil, errNotFound
}

func (r *stubProductoRepo) UpdateStockTx(_ *gorm.DB, varianteID uuid.UUID, delta int) error {
	v, ok := r.variantes[varianteID]
	if !ok {
		return errNotFound
	}
	v.Stock += delta
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── stubColorRepo ─────────────────────────────────────────────────────────────

type stubColorRepo struct {
	colores map[uuid.UUID]*model.Color
	refs    int64
}

func newStubColorRepo() *stubColorRepo {
	return &stubColorRepo{colores: make(map[uuid.UUID]*model.Color)}
}

func (r *stubColorRepo) Create(_ context.Context, c *model.Color) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.colores[c.ID] = c
	return nil
}

func (r *stubColorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Color, error) {
	c, ok := r.colores[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubColorRepo) List(_ context.Context) ([]model.Color, error) {
	out := make([]model.Color, 0, len(r.colores))
	for _, c := range r.colores {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubColorRepo) Update(_ context.Context, c *model.Color) error {
	r.colores[c.ID] = c
	return nil
}

func (r *stubColorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.colores, id)
	return nil
}

func (r *stubColorRepo) CountReferences(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.refs, nil
}

var _ repository.ColorRepository = (*stubColorRepo)(nil)

// ── stubClienteRepo ───────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
	refs     int64
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clientes, id)
	return nil
}

func (r *stubClienteRepo) CountReferences(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.refs, nil
}

func (r *stubClienteRepo) AjustarBalanceTx(_ *gorm.DB, id uuid.UUID, deltaCop int64) error {
	c, ok := r.clientes[id]
	if !ok {
		return errNotFound
	}
	c.BalanceCop += deltaCop
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── stubVentaRepo ─────────────────────────────────────────────────────────────

// stubVentaRepo keeps insertion order for created_at ASC queries and a touch
// counter standing in for updated_at DESC.
type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
	orden  []uuid.UUID
	touch  map[uuid.UUID]int
	seq    int
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{
		ventas: make(map[uuid.UUID]*model.Venta),
		touch:  make(map[uuid.UUID]int),
	}
}

func (r *stubVentaRepo) tocar(id uuid.UUID) {
	r.seq++
	r.touch[id] = r.seq
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, errNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context) ([]model.Venta, error) {
	out := make([]model.Venta, 0, len(r.orden))
	for _, id := range r.orden {
		if v, ok := r.ventas[id]; ok {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	for i := range v.Items {
		if v.Items[i].ID == uuid.Nil {
			v.Items[i].ID = uuid.New()
		}
		v.Items[i].VentaID = v.ID
	}
	cp := *v
	cp.Items = append([]model.VentaItem(nil), v.Items...)
	r.ventas[v.ID] = &cp
	r.orden = append(r.orden, v.ID)
	r.tocar(v.ID)
	return nil
}

func (r *stubVentaRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.ventas, id)
	return nil
}

func (r *stubVentaRepo) UpdatePagoTx(_ *gorm.DB, id uuid.UUID, paidCop int64, paidVes decimal.Decimal, esCredito bool) error {
	v, ok := r.ventas[id]
	if !ok {
		return errNotFound
	}
	v.PaidCop = paidCop
	v.PaidVes = paidVes
	v.EsCredito = esCredito
	r.tocar(id)
	return nil
}

func (r *stubVentaRepo) AjustarPaidCopTx(_ *gorm.DB, id uuid.UUID, deltaCop int64) error {
	v, ok := r.ventas[id]
	if !ok {
		return errNotFound
	}
	v.PaidCop += deltaCop
	r.tocar(id)
	return nil
}

func (r *stubVentaRepo) ListCreditoAbiertasTx(_ *gorm.DB, clienteID uuid.UUID) ([]model.Venta, error) {
	var out []model.Venta
	for _, id := range r.orden {
		v, ok := r.ventas[id]
		if !ok {
			continue
		}
		deuda := v.TotalCop - v.PaidCop - money.VesToCop(v.PaidVes, v.TasaCambio)
		if v.ClienteID != nil && *v.ClienteID == clienteID && v.EsCredito && deuda > 0 {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) ListConPagoTx(_ *gorm.DB, clienteID uuid.UUID) ([]model.Venta, error) {
	var out []model.Venta
	for _, id := range r.orden {
		v, ok := r.ventas[id]
		if !ok {
			continue
		}
		if v.ClienteID != nil && *v.ClienteID == clienteID && v.PaidCop > 0 {
			out = append(out, *v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return r.touch[out[i].ID] > r.touch[out[j].ID]
	})
	return out, nil
}

func (r *stubVentaRepo) ListByCliente(_ context.Context, clienteID uuid.UUID) ([]model.Venta, error) {
	var out []model.Venta
	for _, id := range r.orden {
		v, ok := r.ventas[id]
		if !ok {
			continue
		}
		if v.ClienteID != nil && *v.ClienteID == clienteID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) ListItemsConPaquete(_ context.Context) ([]model.VentaItem, error) {
	var out []model.VentaItem
	for _, id := range r.orden {
		v, ok := r.ventas[id]
		if !ok {
			continue
		}
		for _, it := range v.Items {
			if it.PaqueteID != nil {
				out = append(out, it)
			}
		}
	}
	return out, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── stubPagoRepo ──────────────────────────────────────────────────────────────

type stubPagoRepo struct {
	pagos map[uuid.UUID]*model.Pago
	orden []uuid.UUID
}

func newStubPagoRepo() *stubPagoRepo {
	return &stubPagoRepo{pagos: make(map[uuid.UUID]*model.Pago)}
}

func (r *stubPagoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pago, error) {
	p, ok := r.pagos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubPagoRepo) List(_ context.Context) ([]model.Pago, error) {
	out := make([]model.Pago, 0, len(r.orden))
	for _, id := range r.orden {
		if p, ok := r.pagos[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPagoRepo) ListByCliente(_ context.Context, clienteID uuid.UUID) ([]model.Pago, error) {
	var out []model.Pago
	for _, id := range r.orden {
		p, ok := r.pagos[id]
		if !ok {
			continue
		}
		if p.ClienteID == clienteID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPagoRepo) CreateTx(_ *gorm.DB, p *model.Pago) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.pagos[p.ID] = &cp
	r.orden = append(r.orden, p.ID)
	return nil
}

func (r *stubPagoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.pagos, id)
	return nil
}

func (r *stubPagoRepo) DeleteByVentaTx(_ *gorm.DB, ventaID uuid.UUID) error {
	for id, p := range r.pagos {
		if p.VentaID != nil && *p.VentaID == ventaID {
			delete(r.pagos, id)
		}
	}
	return nil
}

func (r *stubPagoRepo) FindInicialByVentaTx(_ *gorm.DB, ventaID uuid.UUID) (*model.Pago, error) {
	for _, id := range r.orden {
		p, ok := r.pagos[id]
		if !ok {
			continue
		}
		if p.VentaID != nil && *p.VentaID == ventaID && p.EsInicial {
			return p, nil
		}
	}
	return nil, errNotFound
}

func (r *stubPagoRepo) UpdateMontosTx(_ *gorm.DB, id uuid.UUID, amountCop int64, amountVes decimal.Decimal, nota string) error {
	p, ok := r.pagos[id]
	if !ok {
		return errNotFound
	}
	p.AmountCop = amountCop
	p.AmountVes = amountVes
	p.Nota = nota
	return nil
}

func (r *stubPagoRepo) DB() *gorm.DB { return nil }

var _ repository.PagoRepository = (*stubPagoRepo)(nil)

// ── stubPedidoRepo ────────────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos map[uuid.UUID]*model.Pedido
	items   map[uuid.UUID]*model.PedidoItem
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{
		pedidos: make(map[uuid.UUID]*model.Pedido),
		items:   make(map[uuid.UUID]*model.PedidoItem),
	}
}

func (r *stubPedidoRepo) Create(_ context.Context, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Items {
		it := &p.Items[i]
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		it.PedidoID = p.ID
		cp := *it
		r.items[it.ID] = &cp
	}
	cp := *p
	r.pedidos[p.ID] = &cp
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, errNotFound
	}
	out := *p
	out.Items = nil
	for _, it := range r.items {
		if it.PedidoID == id {
			out.Items = append(out.Items, *it)
		}
	}
	return &out, nil
}

func (r *stubPedidoRepo) List(_ context.Context) ([]model.Pedido, error) {
	out := make([]model.Pedido, 0, len(r.pedidos))
	for id := range r.pedidos {
		p, _ := r.FindByID(context.Background(), id)
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPedidoRepo) Update(_ context.Context, p *model.Pedido) error {
	cp := *p
	r.pedidos[p.ID] = &cp
	return nil
}

func (r *stubPedidoRepo) Delete(_ context.Context, id uuid.UUID) error {
	for itemID, it := range r.items {
		if it.PedidoID == id {
			delete(r.items, itemID)
		}
	}
	delete(r.pedidos, id)
	return nil
}

func (r *stubPedidoRepo) FindItemByID(_ context.Context, id uuid.UUID) (*model.PedidoItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, errNotFound
	}
	return it, nil
}

func (r *stubPedidoRepo) FindItemsByIDs(_ context.Context, ids []uuid.UUID) ([]model.PedidoItem, error) {
	var out []model.PedidoItem
	for _, id := range ids {
		if it, ok := r.items[id]; ok {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) UpdateItem(_ context.Context, it *model.PedidoItem) error {
	cp := *it
	r.items[it.ID] = &cp
	return nil
}

func (r *stubPedidoRepo) DeleteItem(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *stubPedidoRepo) SetItemsPaqueteTx(_ *gorm.DB, itemIDs []uuid.UUID, paqueteID *uuid.UUID) error {
	for _, id := range itemIDs {
		if it, ok := r.items[id]; ok {
			it.PaqueteID = paqueteID
		}
	}
	return nil
}

func (r *stubPedidoRepo) DeletePedidosTx(_ *gorm.DB, pedidoIDs []uuid.UUID) error {
	for _, id := range pedidoIDs {
		_ = r.Delete(context.Background(), id)
	}
	return nil
}

func (r *stubPedidoRepo) FindPedidosTx(_ *gorm.DB, ids []uuid.UUID) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, id := range ids {
		if p, ok := r.pedidos[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── stubPaqueteRepo ───────────────────────────────────────────────────────────

type stubPaqueteRepo struct {
	paquetes map[uuid.UUID]*model.Paquete
	items    map[uuid.UUID]*model.PaqueteItem
	refs     int64
}

func newStubPaqueteRepo() *stubPaqueteRepo {
	return &stubPaqueteRepo{
		paquetes: make(map[uuid.UUID]*model.Paquete),
		items:    make(map[uuid.UUID]*model.PaqueteItem),
	}
}

func (r *stubPaqueteRepo) itemsDe(paqueteID uuid.UUID) []model.PaqueteItem {
	var out []model.PaqueteItem
	for _, it := range r.items {
		if it.PaqueteID == paqueteID {
			out = append(out, *it)
		}
	}
	return out
}

func (r *stubPaqueteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Paquete, error) {
	p, ok := r.paquetes[id]
	if !ok {
		return nil, errNotFound
	}
	out := *p
	out.Items = r.itemsDe(id)
	return &out, nil
}

func (r *stubPaqueteRepo) List(_ context.Context) ([]model.Paquete, error) {
	out := make([]model.Paquete, 0, len(r.paquetes))
	for id := range r.paquetes {
		p, _ := r.FindByID(context.Background(), id)
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPaqueteRepo) Delete(_ context.Context, id uuid.UUID) error {
	for itemID, it := range r.items {
		if it.PaqueteID == id {
			delete(r.items, itemID)
		}
	}
	delete(r.paquetes, id)
	return nil
}

func (r *stubPaqueteRepo) CountReferences(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.refs, nil
}

func (r *stubPaqueteRepo) CreateTx(_ *gorm.DB, p *model.Paquete) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Items {
		it := &p.Items[i]
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		it.PaqueteID = p.ID
		cp := *it
		r.items[it.ID] = &cp
	}
	cp := *p
	r.paquetes[p.ID] = &cp
	return nil
}

func (r *stubPaqueteRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	p, ok := r.paquetes[id]
	if !ok {
		return errNotFound
	}
	p.Estado = estado
	return nil
}

func (r *stubPaqueteRepo) UpdateTx(_ *gorm.DB, id uuid.UUID, campos map[string]interface{}) error {
	p, ok := r.paquetes[id]
	if !ok {
		return errNotFound
	}
	if v, ok := campos["estado"].(string); ok {
		p.Estado = v
	}
	if v, ok := campos["nombre"].(string); ok {
		p.Nombre = v
	}
	if v, ok := campos["total_ves"].(decimal.Decimal); ok {
		p.TotalVes = v
	}
	return nil
}

func (r *stubPaqueteRepo) ReplaceItemsTx(_ *gorm.DB, paqueteID uuid.UUID, items []model.PaqueteItem) error {
	for itemID, it := range r.items {
		if it.PaqueteID == paqueteID {
			delete(r.items, itemID)
		}
	}
	for i := range items {
		it := items[i]
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		it.PaqueteID = paqueteID
		r.items[it.ID] = &it
	}
	return nil
}

func (r *stubPaqueteRepo) UpsertItemTx(_ *gorm.DB, paqueteID, productoID, colorID uuid.UUID, cantidad int) error {
	for _, it := range r.items {
		if it.PaqueteID == paqueteID && it.ProductoID == productoID && it.ColorID == colorID {
			it.Cantidad += cantidad
			return nil
		}
	}
	it := &model.PaqueteItem{
		ID:         uuid.New(),
		PaqueteID:  paqueteID,
		ProductoID: productoID,
		ColorID:    colorID,
		Cantidad:   cantidad,
	}
	r.items[it.ID] = it
	return nil
}

func (r *stubPaqueteRepo) FindTx(_ *gorm.DB, id uuid.UUID) (*model.Paquete, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubPaqueteRepo) ListEntregados(_ context.Context) ([]model.Paquete, error) {
	var out []model.Paquete
	for id, p := range r.paquetes {
		if p.Estado == model.PaqueteEntregado {
			full, _ := r.FindByID(context.Background(), id)
			out = append(out, *full)
		}
	}
	return out, nil
}

func (r *stubPaqueteRepo) DB() *gorm.DB { return nil }

var _ repository.PaqueteRepository = (*stubPaqueteRepo)(nil)

// ── stubMovimientoRepo ────────────────────────────────────────────────────────

type stubMovimientoRepo struct {
	movimientos []model.MovimientoStock
}

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) List(_ context.Context, _ int) ([]model.MovimientoStock, error) {
	return r.movimientos, nil
}

func (r *stubMovimientoRepo) porTipo(tipo string) []model.MovimientoStock {
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if m.Tipo == tipo {
			out = append(out, m)
		}
	}
	return out
}

var _ repository.MovimientoStockRepository = (*stubMovimientoRepo)(nil)

// ── Fixture ───────────────────────────────────────────────────────────────────

// fixture wires every service against the in-memory stubs, with a nil
// transaction handle: runTx falls through to direct calls.
type fixture struct {
	colores   *stubColorRepo
	productos *stubProductoRepo
	clientes  *stubClienteRepo
	ventas    *stubVentaRepo
	pagos     *stubPagoRepo
	pedidos   *stubPedidoRepo
	paquetes  *stubPaqueteRepo
	movs      *stubMovimientoRepo

	catalogoSvc service.CatalogoService
	ventaSvc    service.VentaService
	pagoSvc     service.PagoService
	pedidoSvc   service.PedidoService
	paqueteSvc  service.PaqueteService
	auditSvc    service.AuditoriaService
}

func newFixture() *fixture {
	f := &fixture{
		colores:   newStubColorRepo(),
		productos: newStubProductoRepo(),
		clientes:  newStubClienteRepo(),
		ventas:    newStubVentaRepo(),
		pagos:     newStubPagoRepo(),
		pedidos:   newStubPedidoRepo(),
		paquetes:  newStubPaqueteRepo(),
		movs:      &stubMovimientoRepo{},
	}
	f.catalogoSvc = service.NewCatalogoService(f.colores, f.productos, f.movs)
	f.ventaSvc = service.NewVentaService(f.ventas, f.pagos, f.productos, f.clientes, f.movs, nil)
	f.pagoSvc = service.NewPagoService(f.pagos, f.ventas, f.clientes, nil)
	f.pedidoSvc = service.NewPedidoService(f.pedidos, f.paquetes, f.productos, f.clientes, f.ventas, f.pagos, f.movs, nil)
	f.paqueteSvc = service.NewPaqueteService(f.paquetes, f.productos, f.ventas, f.movs)
	f.auditSvc = service.NewAuditoriaService(f.clientes, f.ventas, f.pagos)
	return f
}

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedColor(f *fixture, nombre string) *model.Color {
	c := &model.Color{Nombre: nombre, Hex: "#000000"}
	_ = f.colores.Create(context.Background(), c)
	return c
}

func seedProducto(f *fixture, nombre string, precio int64) *model.Producto {
	p := &model.Producto{Nombre: nombre, PrecioCop: precio}
	_ = f.productos.Create(context.Background(), p)
	return p
}

func seedVariante(f *fixture, productoID, colorID uuid.UUID, stock int) *model.Variante {
	v := &model.Variante{ProductoID: productoID, ColorID: colorID, Stock: stock}
	_ = f.productos.CreateVariante(context.Background(), v)
	return v
}

func seedCliente(f *fixture, nombre string) *model.Cliente {
	c := &model.Cliente{Nombre: nombre}
	_ = f.clientes.Create(context.Background(), c)
	return c
}

func stockDe(f *fixture, productoID, colorID uuid.UUID) int {
	v := f.productos.buscarVariante(productoID, colorID)
	if v == nil {
		return -1
	}
	return v.Stock
}

func balanceDe(f *fixture, clienteID uuid.UUID) int64 {
	return f.clientes.clientes[clienteID].BalanceCop
}
