package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

var cien = decimal.NewFromInt(100)

// CreateSaleUseCase confirma una venta y descuenta el stock en una sola
// transacción. Si algún producto no alcanza, nada queda escrito.
type CreateSaleUseCase struct {
	txRunner     SalesTxRunner
	personRepo   repository.PersonRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner SalesTxRunner,
	personRepo repository.PersonRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		personRepo:   personRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

func metodoPagoValido(m string) bool {
	switch m {
	case entity.PagoEfectivo, entity.PagoTarjeta, entity.PagoTransferencia, entity.PagoCredito, entity.PagoMixto:
		return true
	}
	return false
}

// Create valida, arma los snapshots de precio y costo, y confirma la venta.
// Si el pago incluye crédito, abre la cuenta por cobrar en la misma transacción.
func (uc *CreateSaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*entity.Sale, error) {
	if in.VendedorID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !metodoPagoValido(in.MetodoPago) {
		return nil, fmt.Errorf("%w: método de pago %q", domain.ErrInvalidInput, in.MetodoPago)
	}
	if in.ManoObra.IsNegative() || in.Recargo.IsNegative() || in.DescuentoValor.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	// Vendedor y mecánico: existencia y rol (fuera de la tx, solo lectura).
	vendedor, err := uc.personRepo.GetByID(in.VendedorID)
	if err != nil {
		return nil, err
	}
	if vendedor == nil || !vendedor.Activo {
		return nil, domain.ErrNotFound
	}
	if !vendedor.CanSell() {
		return nil, fmt.Errorf("%w: %s no es vendedor", domain.ErrRoleMismatch, vendedor.Nombre)
	}
	var mecanicoID *string
	if in.MecanicoID != "" {
		mecanico, err := uc.personRepo.GetByID(in.MecanicoID)
		if err != nil {
			return nil, err
		}
		if mecanico == nil || !mecanico.Activo {
			return nil, domain.ErrNotFound
		}
		if !mecanico.CanLabor() {
			return nil, fmt.Errorf("%w: %s no es mecánico", domain.ErrRoleMismatch, mecanico.Nombre)
		}
		mecanicoID = &in.MecanicoID
	}
	var clienteID *string
	if in.ClienteID != "" {
		cliente, err := uc.customerRepo.GetByID(in.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil || !cliente.Activo {
			return nil, domain.ErrNotFound
		}
		clienteID = &in.ClienteID
	}

	// Productos: existencia y snapshot de precio y costo.
	now := time.Now()
	ventaID := uuid.New().String()
	items := make([]entity.SaleItem, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, it := range in.Items {
		if it.ProductoID == "" || it.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		producto, err := uc.productRepo.GetByID(it.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil || !producto.Activo {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, it.ProductoID)
		}
		items = append(items, entity.SaleItem{
			ID:             uuid.New().String(),
			VentaID:        ventaID,
			ProductoID:     it.ProductoID,
			Cantidad:       it.Cantidad,
			PrecioUnitario: producto.PrecioVenta,
			CostoUnitario:  producto.Costo,
		})
		subtotal = subtotal.Add(producto.PrecioVenta.Mul(decimal.NewFromInt(int64(it.Cantidad))))
	}

	// Descuento: se resuelve una sola vez y queda como snapshot.
	descuentoTipo := in.DescuentoTipo
	if descuentoTipo == "" {
		descuentoTipo = entity.DescuentoFijo
	}
	var descuentoMonto decimal.Decimal
	switch descuentoTipo {
	case entity.DescuentoFijo:
		descuentoMonto = in.DescuentoValor
	case entity.DescuentoPorcentaje:
		descuentoMonto = subtotal.Mul(in.DescuentoValor).Div(cien)
	default:
		return nil, fmt.Errorf("%w: tipo de descuento %q", domain.ErrInvalidInput, descuentoTipo)
	}

	total := subtotal.Add(in.Recargo).Add(in.ManoObra).Sub(descuentoMonto)
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: el descuento deja la venta en negativo", domain.ErrInvalidInput)
	}

	pagos, montoCredito, err := normalizarPagos(ventaID, in, total)
	if err != nil {
		return nil, err
	}
	if montoCredito.GreaterThan(decimal.Zero) && clienteID == nil {
		return nil, fmt.Errorf("%w: una venta a crédito requiere cliente", domain.ErrInvalidInput)
	}

	venta := &entity.Sale{
		ID:             ventaID,
		VendedorID:     in.VendedorID,
		MecanicoID:     mecanicoID,
		ClienteID:      clienteID,
		Subtotal:       subtotal,
		ManoObra:       in.ManoObra,
		Recargo:        in.Recargo,
		DescuentoTipo:  descuentoTipo,
		DescuentoValor: in.DescuentoValor,
		DescuentoMonto: descuentoMonto,
		Total:          total,
		MetodoPago:     in.MetodoPago,
		Fecha:          now,
		CreatedAt:      now,
		Items:          items,
		Pagos:          pagos,
	}

	err = uc.txRunner.RunSale(func(
		ventas repository.SaleRepository,
		productos repository.ProductRepository,
		cuentas repository.ReceivableRepository,
	) error {
		// Descuento de stock con guarda condicional: si alguna línea no
		// alcanza, toda la venta se revierte.
		for _, it := range venta.Items {
			if err := productos.DecrementStock(it.ProductoID, it.Cantidad); err != nil {
				return fmt.Errorf("producto %s: %w", it.ProductoID, err)
			}
		}
		if err := ventas.Create(venta); err != nil {
			return err
		}
		for i := range venta.Items {
			if err := ventas.CreateItem(&venta.Items[i]); err != nil {
				return err
			}
		}
		for i := range venta.Pagos {
			if err := ventas.CreatePayment(&venta.Pagos[i]); err != nil {
				return err
			}
		}
		if montoCredito.GreaterThan(decimal.Zero) {
			return cuentas.Create(&entity.Receivable{
				ID:               uuid.New().String(),
				ClienteID:        *clienteID,
				VentaID:          &venta.ID,
				Descripcion:      "Venta a crédito",
				MontoTotal:       montoCredito,
				MontoPagado:      decimal.Zero,
				FechaCreacion:    now,
				FechaVencimiento: in.FechaVencimiento,
				Estado:           entity.ReceivablePendiente,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return venta, nil
}

// normalizarPagos deja siempre al menos un registro en venta_pagos: método
// único se vuelca a un solo pago por el total; "mixto" exige pagos explícitos
// que sumen el total dentro de la tolerancia. Devuelve la porción a crédito.
func normalizarPagos(ventaID string, in dto.CreateSaleRequest, total decimal.Decimal) ([]entity.Payment, decimal.Decimal, error) {
	if in.MetodoPago != entity.PagoMixto {
		pago := entity.Payment{
			ID:      uuid.New().String(),
			VentaID: ventaID,
			Metodo:  in.MetodoPago,
			Monto:   total,
		}
		if in.MetodoPago == entity.PagoCredito {
			return []entity.Payment{pago}, total, nil
		}
		return []entity.Payment{pago}, decimal.Zero, nil
	}

	if len(in.Pagos) == 0 {
		return nil, decimal.Zero, fmt.Errorf("%w: pago mixto sin pagos", domain.ErrInvalidInput)
	}
	pagos := make([]entity.Payment, 0, len(in.Pagos))
	suma := decimal.Zero
	credito := decimal.Zero
	for _, p := range in.Pagos {
		if p.Metodo == entity.PagoMixto || !metodoPagoValido(p.Metodo) {
			return nil, decimal.Zero, fmt.Errorf("%w: método de pago %q", domain.ErrInvalidInput, p.Metodo)
		}
		if !p.Monto.GreaterThan(decimal.Zero) {
			return nil, decimal.Zero, fmt.Errorf("%w: pago con monto no positivo", domain.ErrInvalidInput)
		}
		pagos = append(pagos, entity.Payment{
			ID:      uuid.New().String(),
			VentaID: ventaID,
			Metodo:  p.Metodo,
			Monto:   p.Monto,
			Detalle: p.Detalle,
		})
		suma = suma.Add(p.Monto)
		if p.Metodo == entity.PagoCredito {
			credito = credito.Add(p.Monto)
		}
	}
	if suma.Sub(total).Abs().GreaterThan(entity.ToleranciaPago) {
		return nil, decimal.Zero, fmt.Errorf("%w: los pagos suman %s y la venta es %s",
			domain.ErrInvalidInput, suma, total)
	}
	return pagos, credito, nil
}
