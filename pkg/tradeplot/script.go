package tradeplot

// InteractionScript is the client-side script carried verbatim by the figure's
// annotation. It is opaque to this package: stored and emitted, never run.
//
// On a plain click it appends the clicked point to the first trace. On a
// select click on that trace it looks the point up by value, deletes the trace
// and re-adds it without the point; with duplicate points the first match is
// the one removed.
const InteractionScript = `
    <script>
        var plot = document.getElementById('plot');
        plot.on('plotly_click', function(data) {
            var clickmode = data.layout.clickmode;
            var pts = data.points[0];
            var x = pts.xaxis.d2l(pts.x);
            var y = pts.yaxis.d2l(pts.y);
            if (clickmode === 'event') {
                Plotly.extendTraces(plot, {x: [[x]], y: [[y]]}, [0]);
            } else if (clickmode === 'event+select' && pts.curveNumber === 0) {
                var xIndex = pts.data.x.indexOf(pts.x);
                var yIndex = pts.data.y.indexOf(pts.y);
                Plotly.deleteTraces(plot, 0);
                var newX = pts.data.x.slice();
                var newY = pts.data.y.slice();
                newX.splice(xIndex, 1);
                newY.splice(yIndex, 1);
                Plotly.addTraces(plot, {x: newX, y: newY, mode: 'markers', marker: {size: 10}, name: 'Countries'});
            }
        });
    </script>
    `
