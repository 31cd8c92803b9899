package embervk

import (
	vk "github.com/vulkan-go/vulkan"
)

// CorePipeline owns the graphics pipeline and its empty layout. Every state
// is fixed at build time; the viewport and scissor are baked to the
// swapchain extent.
type CorePipeline struct {
	layout vk.PipelineLayout
	handle vk.Pipeline
}

// NewCorePipeline loads both shader stages and assembles the pipeline
// against the render pass. The shader modules only feed pipeline
// construction and are destroyed on the way out.
func NewCorePipeline(device *CoreDevice, pass *CoreRenderPass, extent vk.Extent2D, config Config) (*CorePipeline, error) {
	vert, err := loadShaderModule(device.Handle(), config.VertexShaderPath)
	if err != nil {
		return nil, err
	}
	defer vk.DestroyShaderModule(device.Handle(), vert, nil)

	frag, err := loadShaderModule(device.Handle(), config.FragmentShaderPath)
	if err != nil {
		return nil, err
	}
	defer vk.DestroyShaderModule(device.Handle(), frag, nil)

	stages := []vk.PipelineShaderStageCreateInfo{{
		SType:  vk.StructureTypePipelineShaderStageCreateInfo,
		Stage:  vk.ShaderStageVertexBit,
		Module: vert,
		PName:  safeString("main"),
	}, {
		SType:  vk.StructureTypePipelineShaderStageCreateInfo,
		Stage:  vk.ShaderStageFragmentBit,
		Module: frag,
		PName:  safeString("main"),
	}}

	// The vertex shader derives the triangle from gl_VertexIndex, so the
	// input state declares no bindings at all.
	vertexInput := vk.PipelineVertexInputStateCreateInfo{
		SType: vk.StructureTypePipelineVertexInputStateCreateInfo,
	}

	assembly := vk.PipelineInputAssemblyStateCreateInfo{
		SType:                  vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology:               vk.PrimitiveTopologyTriangleList,
		PrimitiveRestartEnable: vk.False,
	}

	viewports := []vk.Viewport{{
		X:        0,
		Y:        0,
		Width:    float32(extent.Width),
		Height:   float32(extent.Height),
		MinDepth: 0,
		MaxDepth: 1,
	}}
	scissors := []vk.Rect2D{{
		Offset: vk.Offset2D{},
		Extent: extent,
	}}
	viewportState := vk.PipelineViewportStateCreateInfo{
		SType:         vk.StructureTypePipelineViewportStateCreateInfo,
		ViewportCount: 1,
		PViewports:    viewports,
		ScissorCount:  1,
		PScissors:     scissors,
	}

	rasterizer := vk.PipelineRasterizationStateCreateInfo{
		SType:                   vk.StructureTypePipelineRasterizationStateCreateInfo,
		DepthClampEnable:        vk.False,
		RasterizerDiscardEnable: vk.False,
		PolygonMode:             vk.PolygonModeFill,
		CullMode:                vk.CullModeFlags(vk.CullModeBackBit),
		FrontFace:               vk.FrontFaceClockwise,
		DepthBiasEnable:         vk.False,
		LineWidth:               1.0,
	}

	multisample := vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: vk.SampleCount1Bit,
		SampleShadingEnable:  vk.False,
	}

	blendAttachments := []vk.PipelineColorBlendAttachmentState{{
		ColorWriteMask: vk.ColorComponentFlags(
			vk.ColorComponentRBit | vk.ColorComponentGBit |
				vk.ColorComponentBBit | vk.ColorComponentABit),
		BlendEnable: vk.False,
	}}
	blendState := vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
		LogicOpEnable:   vk.False,
		LogicOp:         vk.LogicOpCopy,
		AttachmentCount: 1,
		PAttachments:    blendAttachments,
	}

	var layout vk.PipelineLayout
	ret := vk.CreatePipelineLayout(device.Handle(), &vk.PipelineLayoutCreateInfo{
		SType: vk.StructureTypePipelineLayoutCreateInfo,
	}, nil, &layout)
	if err := NewError(ErrPipelineLayout, ret); err != nil {
		return nil, err
	}

	pipelines := make([]vk.Pipeline, 1)
	ret = vk.CreateGraphicsPipelines(device.Handle(), vk.NullPipelineCache, 1,
		[]vk.GraphicsPipelineCreateInfo{{
			SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
			StageCount:          uint32(len(stages)),
			PStages:             stages,
			PVertexInputState:   &vertexInput,
			PInputAssemblyState: &assembly,
			PViewportState:      &viewportState,
			PRasterizationState: &rasterizer,
			PMultisampleState:   &multisample,
			PColorBlendState:    &blendState,
			Layout:              layout,
			RenderPass:          pass.Handle(),
			Subpass:             0,
			BasePipelineHandle:  vk.NullPipeline,
			BasePipelineIndex:   -1,
		}}, nil, pipelines)
	if err := NewError(ErrPipelineCreation, ret); err != nil {
		vk.DestroyPipelineLayout(device.Handle(), layout, nil)
		return nil, err
	}

	Infof("graphics pipeline created")
	return &CorePipeline{layout: layout, handle: pipelines[0]}, nil
}

func (p *CorePipeline) Handle() vk.Pipeline       { return p.handle }
func (p *CorePipeline) Layout() vk.PipelineLayout { return p.layout }

// Destroy releases the pipeline before the layout it was built with.
func (p *CorePipeline) Destroy(device vk.Device) {
	if p == nil {
		return
	}
	if p.handle != vk.NullPipeline {
		vk.DestroyPipeline(device, p.handle, nil)
		p.handle = vk.NullPipeline
	}
	if p.layout != vk.NullPipelineLayout {
		vk.DestroyPipelineLayout(device, p.layout, nil)
		p.layout = vk.NullPipelineLayout
	}
	Infof("graphics pipeline destroyed")
}
