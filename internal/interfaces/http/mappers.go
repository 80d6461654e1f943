package http

import (
	"github.com/jpcardoso/almoxarifado-api/internal/application/dto"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

// Conversões entidade/agregado -> DTO de resposta.

func toItemDTO(item *entity.StockItem) dto.ItemDTO {
	return dto.ItemDTO{
		ID:           item.ID,
		Produto:      item.Product,
		Quantidade:   item.Quantity,
		Unidade:      item.Unit,
		Localizacao:  item.Location,
		CriadoEm:     item.CreatedAt,
		AtualizadoEm: item.UpdatedAt,
	}
}

func toMovementDTO(mv *repository.MovementWithRefs) dto.MovementDTO {
	return dto.MovementDTO{
		ID:         mv.Movement.ID,
		Tipo:       mv.Movement.Type,
		Quantidade: mv.Movement.Quantity,
		Motivo:     mv.Movement.Reason,
		Observacao: mv.Movement.Notes,
		Estoque: dto.MovementItemDTO{
			ID:      mv.Item.ID,
			Produto: mv.Item.Product,
			Unidade: mv.Item.Unit,
		},
		Responsavel: dto.ActorDTO{
			ID:        mv.Actor.ID,
			Matricula: mv.Actor.Matricula,
		},
		DataMovimentacao: mv.Movement.Date,
	}
}

func toSaleDTO(sw *repository.SaleWithRefs) dto.SaleDTO {
	itens := make([]dto.SaleLineDTO, 0, len(sw.Lines))
	for _, l := range sw.Lines {
		itens = append(itens, dto.SaleLineDTO{
			ID: l.Line.ID,
			Estoque: dto.MovementItemDTO{
				ID:      l.Item.ID,
				Produto: l.Item.Product,
				Unidade: l.Item.Unit,
			},
			Quantidade:    l.Line.Quantity,
			PrecoUnitario: l.Line.UnitPrice,
			Subtotal:      l.Line.Subtotal,
		})
	}
	return dto.SaleDTO{
		ID:        sw.Sale.ID,
		ClienteID: sw.Sale.BuyerID,
		Vendedor: dto.ActorDTO{
			ID:        sw.Seller.ID,
			Matricula: sw.Seller.Matricula,
		},
		Total:      sw.Sale.Total,
		Status:     sw.Sale.Status,
		Observacao: sw.Sale.Notes,
		DataVenda:  sw.Sale.Date,
		Itens:      itens,
	}
}

func toFlowDTO(fw *repository.FlowWithVehicle) dto.FlowDTO {
	return dto.FlowDTO{
		ID: fw.Flow.ID,
		Veiculo: dto.VehicleDTO{
			ID:     fw.Vehicle.ID,
			Placa:  fw.Vehicle.Plate,
			Modelo: fw.Vehicle.Model,
		},
		CriadoEm: fw.Flow.CreatedAt,
	}
}
